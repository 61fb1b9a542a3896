package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type historyRepository struct {
	mu         sync.RWMutex
	exports    map[string]*model.ExportRecord
	ingestions map[string]*model.IngestionRecord
}

// Export operations

func (r *historyRepository) PutExport(ctx context.Context, record *model.ExportRecord) error {
	if record.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "export record ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.exports[record.ID.String()] = &copied
	return nil
}

func (r *historyRepository) GetExport(ctx context.Context, id types.RecordID) (*model.ExportRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.exports[id.String()]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "export record not found",
			goerr.V("id", id),
		)
	}

	copied := *record
	return &copied, nil
}

func (r *historyRepository) ListExports(ctx context.Context, limit int) ([]*model.ExportRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.ExportRecord, 0, len(r.exports))
	for _, record := range r.exports {
		copied := *record
		records = append(records, &copied)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// Ingestion operations

func (r *historyRepository) PutIngestion(ctx context.Context, record *model.IngestionRecord) error {
	if record.TaskID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "ingestion task ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.ingestions[record.TaskID.String()] = &copied
	return nil
}

func (r *historyRepository) GetIngestion(ctx context.Context, taskID types.TaskID) (*model.IngestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.ingestions[taskID.String()]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "ingestion record not found",
			goerr.V("taskID", taskID),
		)
	}

	copied := *record
	return &copied, nil
}

func (r *historyRepository) ListIngestions(ctx context.Context, limit int) ([]*model.IngestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.IngestionRecord, 0, len(r.ingestions))
	for _, record := range r.ingestions {
		copied := *record
		records = append(records, &copied)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
