package ee

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/earthengine/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Scopes required by the client. Earth Engine rejects credentials that only
// carry the cloud-platform scope for some projects.
var Scopes = []string{
	earthengine.EarthengineScope,
	earthengine.CloudPlatformScope,
}

type Client struct {
	svc     *earthengine.Service
	project types.GoogleProjectID
}

var _ interfaces.EarthEngine = (*Client)(nil)

// New creates an Earth Engine client. projectID is the cloud project whose
// asset catalog receives ingested tables.
func New(ctx context.Context, projectID types.GoogleProjectID, options ...option.ClientOption) (*Client, error) {
	opts := append([]option.ClientOption{option.WithScopes(Scopes...)}, options...)
	svc, err := earthengine.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Earth Engine client", goerr.V("projectID", projectID))
	}

	return &Client{
		svc:     svc,
		project: projectID,
	}, nil
}

func projectParent(project types.GoogleProjectID) string {
	return "projects/" + project.String()
}

// NewTaskID implements interfaces.EarthEngine. Task IDs are random UUIDs
// generated on the client side, the same way the Earth Engine client
// libraries issue them.
func (x *Client) NewTaskID(ctx context.Context) (types.TaskID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate task ID")
	}
	return types.TaskID(id.String()), nil
}

// ImportTable implements interfaces.EarthEngine. It returns as soon as the
// task is accepted.
func (x *Client) ImportTable(ctx context.Context, req *model.IngestionRequest) (types.OperationName, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	sources := make([]*earthengine.TableSource, len(req.Sources))
	for i, src := range req.Sources {
		sources[i] = &earthengine.TableSource{
			Uris:         src.URIs,
			CsvDelimiter: src.CSVDelimiter.String(),
		}
	}

	body := &earthengine.ImportTableRequest{
		RequestId: req.RequestID.String(),
		Overwrite: req.Overwrite,
		TableManifest: &earthengine.TableManifest{
			Name:    req.Name,
			Sources: sources,
		},
	}

	op, err := x.svc.Projects.Table.Import(projectParent(x.project), body).Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to start table ingestion",
			goerr.V("requestID", req.RequestID),
			goerr.V("name", req.Name),
		)
	}

	return types.OperationName(op.Name), nil
}

type operationMetadata struct {
	State string `json:"state"`
}

// GetOperation implements interfaces.EarthEngine.
func (x *Client) GetOperation(ctx context.Context, name types.OperationName) (*model.IngestionStatus, error) {
	op, err := x.svc.Projects.Operations.Get(name.String()).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(types.ErrTaskNotFound, "operation not found", goerr.V("name", name))
		}
		return nil, goerr.Wrap(err, "failed to get operation", goerr.V("name", name))
	}

	status := &model.IngestionStatus{
		Operation: types.OperationName(op.Name),
		Done:      op.Done,
	}
	if op.Error != nil {
		status.Error = op.Error.Message
	}

	if len(op.Metadata) > 0 {
		var md operationMetadata
		if err := json.Unmarshal(op.Metadata, &md); err != nil {
			return nil, goerr.Wrap(err, "failed to decode operation metadata",
				goerr.V("name", name),
				goerr.V("metadata", string(op.Metadata)),
			)
		}
		status.State = md.State
	}

	return status, nil
}

// ListAssets implements interfaces.EarthEngine. It lists assets at the root
// of the project's asset catalog.
func (x *Client) ListAssets(ctx context.Context, project types.GoogleProjectID) ([]*model.Asset, error) {
	var assets []*model.Asset
	err := x.svc.Projects.ListAssets(projectParent(project)).Pages(ctx, func(resp *earthengine.ListAssetsResponse) error {
		for _, a := range resp.Assets {
			assets = append(assets, &model.Asset{
				Name: a.Name,
				ID:   types.AssetID(a.Id),
				Type: a.Type,
			})
		}
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(types.ErrAssetNotFound, "asset folder not found", goerr.V("project", project))
		}
		return nil, goerr.Wrap(err, "failed to list assets", goerr.V("project", project))
	}

	return assets, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
