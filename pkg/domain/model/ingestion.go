package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AssetNameFromObject drops the final extension of the object's file name.
// A name without extension is returned as is. Dots in directory segments are
// not treated as an extension.
func AssetNameFromObject(name types.ObjectName) types.AssetID {
	s := name.String()
	slash := strings.LastIndex(s, "/")
	if dot := strings.LastIndex(s, "."); dot > slash {
		s = s[:dot]
	}
	return types.AssetID(s)
}

// AssetPath returns the full asset name in the project's asset catalog.
func AssetPath(project types.GoogleProjectID, asset types.AssetID) string {
	return "projects/" + project.String() + "/assets/" + asset.String()
}

// OperationName returns the operation name of a task submitted with taskID.
// A value that is already an operation name is returned as is.
func OperationName(project types.GoogleProjectID, taskID types.TaskID) types.OperationName {
	if strings.HasPrefix(taskID.String(), "projects/") {
		return types.OperationName(taskID)
	}
	return types.OperationName("projects/" + project.String() + "/operations/" + taskID.String())
}

type TableSource struct {
	URIs         []string
	CSVDelimiter types.CSVDelimiter
}

// IngestionRequest is a table ingestion submitted to the asset catalog.
type IngestionRequest struct {
	RequestID types.TaskID
	Name      string
	Sources   []TableSource
	Overwrite bool
}

func (x *IngestionRequest) Validate() error {
	if x.RequestID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "request ID is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "asset name is empty")
	}
	if len(x.Sources) != 1 || len(x.Sources[0].URIs) != 1 {
		return goerr.Wrap(types.ErrValidationFailed, "ingestion request must have exactly one source URI",
			goerr.V("sources", x.Sources),
		)
	}
	if !x.Overwrite {
		return goerr.Wrap(types.ErrValidationFailed, "ingestion request must allow overwrite")
	}
	return nil
}

// NewIngestionRequest builds the request for a created storage object.
func NewIngestionRequest(taskID types.TaskID, project types.GoogleProjectID, delimiter types.CSVDelimiter, ev *StorageObjectEvent) (*IngestionRequest, error) {
	uri, err := ev.SourceURI()
	if err != nil {
		return nil, err
	}

	asset := AssetNameFromObject(ev.Name)
	if asset == "" || strings.HasSuffix(asset.String(), "/") {
		return nil, goerr.Wrap(types.ErrValidationFailed, "object name gives an empty asset ID",
			goerr.V("name", ev.Name),
		)
	}

	req := &IngestionRequest{
		RequestID: taskID,
		Name:      AssetPath(project, asset),
		Sources: []TableSource{
			{
				URIs:         []string{uri},
				CSVDelimiter: delimiter,
			},
		},
		Overwrite: true,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

type IngestObjectOutput struct {
	TaskID    types.TaskID
	AssetName string
	SourceURI string
	Operation types.OperationName
}

// IngestionStatus is the state of a submitted ingestion as reported by the
// asset catalog.
type IngestionStatus struct {
	Operation types.OperationName `json:"operation"`
	State     string              `json:"state"`
	Done      bool                `json:"done"`
	Error     string              `json:"error,omitempty"`
}

// Asset is an entry of the asset catalog.
type Asset struct {
	Name string        `json:"name"`
	ID   types.AssetID `json:"id"`
	Type string        `json:"type"`
}

// LatestDatedAsset returns the asset whose date-named ID is closest to now
// without being after it. Assets whose ID is not an export date are ignored.
// Returns nil if none matches.
func LatestDatedAsset(assets []*Asset, now time.Time) *Asset {
	var (
		found  *Asset
		latest time.Time
	)
	for _, a := range assets {
		id := a.ID.String()
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}
		t, ok := ParseExportDate(id)
		if !ok || t.After(now) {
			continue
		}
		if found == nil || t.After(latest) {
			found = a
			latest = t
		}
	}
	return found
}
