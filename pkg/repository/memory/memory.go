package memory

import (
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
)

// New creates a new in-memory repository
func New() interfaces.HistoryRepository {
	return &historyRepository{
		exports:    make(map[string]*model.ExportRecord),
		ingestions: make(map[string]*model.IngestionRecord),
	}
}
