package gcs

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
}

var _ interfaces.Storage = (*Client)(nil)

func New(ctx context.Context, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &Client{client: client}, nil
}

// Attrs implements interfaces.Storage. If the object does not exist, it returns nil.
func (x *Client) Attrs(ctx context.Context, bucket types.BucketName, object types.ObjectName) (*model.ObjectAttrs, error) {
	attrs, err := x.client.Bucket(bucket.String()).Object(object.String()).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get object attributes",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}

	return &model.ObjectAttrs{
		Bucket:      types.BucketName(attrs.Bucket),
		Name:        types.ObjectName(attrs.Name),
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		Generation:  attrs.Generation,
	}, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
