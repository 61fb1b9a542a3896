package usecase

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListHistory returns recent export and ingestion records. limit <= 0 means
// model.DefaultHistoryLimit.
func (x *UseCase) ListHistory(ctx context.Context, limit int) (*model.History, error) {
	repo := x.clients.HistoryRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "history repository is not configured")
	}
	if limit <= 0 {
		limit = model.DefaultHistoryLimit
	}

	exports, err := repo.ListExports(ctx, limit)
	if err != nil {
		return nil, err
	}
	ingestions, err := repo.ListIngestions(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &model.History{
		Exports:    exports,
		Ingestions: ingestions,
	}, nil
}
