package interfaces

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
)

//go:generate moq -out ../mock/history_repository_mock.go -pkg mock . HistoryRepository

// HistoryRepository keeps records of exports and submitted ingestion tasks
type HistoryRepository interface {
	// Export operations
	PutExport(ctx context.Context, record *model.ExportRecord) error
	GetExport(ctx context.Context, id types.RecordID) (*model.ExportRecord, error)
	ListExports(ctx context.Context, limit int) ([]*model.ExportRecord, error)

	// Ingestion operations
	PutIngestion(ctx context.Context, record *model.IngestionRecord) error
	GetIngestion(ctx context.Context, taskID types.TaskID) (*model.IngestionRecord, error)
	ListIngestions(ctx context.Context, limit int) ([]*model.IngestionRecord, error)
}
