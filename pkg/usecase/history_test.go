package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/mock"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra"
	"github.com/m-mizutani/bq2ee/pkg/repository/memory"
	"github.com/m-mizutani/bq2ee/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestListHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns newest records first", func(t *testing.T) {
		repo := memory.New()
		base := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			gt.NoError(t, repo.PutExport(ctx, &model.ExportRecord{
				ID:        types.NewRecordID(),
				Status:    types.RecordStatusSucceeded,
				CreatedAt: base.Add(time.Duration(i) * time.Hour),
			}))
			gt.NoError(t, repo.PutIngestion(ctx, &model.IngestionRecord{
				TaskID:    types.TaskID(fmt.Sprintf("task-%d", i)),
				Status:    types.RecordStatusSubmitted,
				CreatedAt: base.Add(time.Duration(i) * time.Hour),
			}))
		}

		uc := usecase.New(infra.New(infra.WithHistoryRepository(repo)))
		history := gt.R1(uc.ListHistory(ctx, 2)).NoError(t)
		gt.A(t, history.Exports).Length(2)
		gt.A(t, history.Ingestions).Length(2)
		gt.V(t, history.Ingestions[0].TaskID).Equal(types.TaskID("task-2"))
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		repo := &mock.HistoryRepositoryMock{
			ListExportsFunc: func(ctx context.Context, limit int) ([]*model.ExportRecord, error) {
				return nil, nil
			},
			ListIngestionsFunc: func(ctx context.Context, limit int) ([]*model.IngestionRecord, error) {
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithHistoryRepository(repo)))

		gt.R1(uc.ListHistory(ctx, 0)).NoError(t)
		gt.V(t, repo.ListExportsCalls()[0].Limit).Equal(model.DefaultHistoryLimit)
		gt.V(t, repo.ListIngestionsCalls()[0].Limit).Equal(model.DefaultHistoryLimit)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := &mock.HistoryRepositoryMock{
			ListExportsFunc: func(ctx context.Context, limit int) ([]*model.ExportRecord, error) {
				return nil, errors.New("unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithHistoryRepository(repo)))

		gt.R1(uc.ListHistory(ctx, 10)).Error(t)
		gt.A(t, repo.ListIngestionsCalls()).Length(0)
	})

	t.Run("repository is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.ListHistory(ctx, 10)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
