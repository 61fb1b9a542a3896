package model

import (
	"strings"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const gcsScheme = "gs://"

// GCSURI builds gs://<bucket>/<object>. Surrounding slashes of bucket and
// object are trimmed so that the URI never contains an empty path segment
// right after the bucket.
func GCSURI(bucket types.BucketName, object types.ObjectName) (string, error) {
	b := strings.Trim(bucket.String(), "/")
	o := strings.TrimLeft(object.String(), "/")

	if b == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "bucket name is empty", goerr.V("bucket", bucket))
	}
	if o == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "object name is empty", goerr.V("object", object))
	}

	return gcsScheme + b + "/" + o, nil
}

// ObjectAttrs is a subset of object metadata that is used to record exported
// artifacts.
type ObjectAttrs struct {
	Bucket      types.BucketName
	Name        types.ObjectName
	Size        int64
	ContentType string
	Generation  int64
}
