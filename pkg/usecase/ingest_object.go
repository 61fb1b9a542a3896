package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/utils/errutil"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// IngestObject submits a table ingestion task for a created storage object.
// It returns right after the task is accepted and does not wait for the
// ingestion to finish. Use GetIngestionStatus to check the task later.
func (x *UseCase) IngestObject(ctx context.Context, ev *model.StorageObjectEvent) (*model.IngestObjectOutput, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	ee := x.clients.EarthEngine()
	if ee == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Earth Engine client is not configured")
	}
	if x.ingest.ProjectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Earth Engine project ID is not configured")
	}

	taskID, err := ee.NewTaskID(ctx)
	if err != nil {
		return nil, err
	}

	req, err := model.NewIngestionRequest(taskID, x.ingest.ProjectID, x.ingest.CSVDelimiter, ev)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(slog.Any("task_id", taskID))
	logger.Info("starting table ingestion",
		slog.String("name", req.Name),
		slog.Any("sources", req.Sources),
	)

	opName, err := ee.ImportTable(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to submit ingestion task",
			goerr.V("taskID", taskID),
			goerr.V("name", req.Name),
		)
	}

	out := &model.IngestObjectOutput{
		TaskID:    taskID,
		AssetName: req.Name,
		SourceURI: req.Sources[0].URIs[0],
		Operation: opName,
	}

	if repo := x.clients.HistoryRepository(); repo != nil {
		record := &model.IngestionRecord{
			TaskID:    taskID,
			AssetName: out.AssetName,
			SourceURI: out.SourceURI,
			Operation: opName,
			Status:    types.RecordStatusSubmitted,
			CreatedAt: logging.CtxTime(ctx),
		}
		if err := repo.PutIngestion(ctx, record); err != nil {
			errutil.HandleError(ctx, "failed to put ingestion record", err)
		}
	}

	logger.Info("ingestion task submitted", slog.Any("operation", opName))

	return out, nil
}
