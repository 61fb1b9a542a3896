package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery Storage EarthEngine

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
)

type BigQuery interface {
	// ExtractTable runs an extract job and blocks until the job is done.
	ExtractTable(ctx context.Context, input *model.ExtractTableInput) (*model.ExtractTableOutput, error)
}

type Storage interface {
	// Attrs returns nil without error if the object does not exist.
	Attrs(ctx context.Context, bucket types.BucketName, object types.ObjectName) (*model.ObjectAttrs, error)
}

type EarthEngine interface {
	NewTaskID(ctx context.Context) (types.TaskID, error)
	// ImportTable submits an ingestion task and returns without waiting for it.
	ImportTable(ctx context.Context, req *model.IngestionRequest) (types.OperationName, error)
	GetOperation(ctx context.Context, name types.OperationName) (*model.IngestionStatus, error)
	ListAssets(ctx context.Context, project types.GoogleProjectID) ([]*model.Asset, error)
}
