package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
)

type UseCase interface {
	ExportTable(ctx context.Context) (*model.ExportTableOutput, error)
	IngestObject(ctx context.Context, ev *model.StorageObjectEvent) (*model.IngestObjectOutput, error)
	GetIngestionStatus(ctx context.Context, id types.TaskID) (*model.IngestionStatus, error)
	LatestAsset(ctx context.Context) (*model.Asset, error)
	ListHistory(ctx context.Context, limit int) (*model.History, error)
}
