package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/utils/errutil"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ExportTable exports the configured BigQuery table as a CSV file named after
// the current date into the export bucket, and blocks until the extract job is
// done. Errors are not retried; the trigger platform decides whether to retry.
func (x *UseCase) ExportTable(ctx context.Context) (*model.ExportTableOutput, error) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery client is not configured")
	}

	cfg := x.export
	if err := cfg.Table.Validate(); err != nil {
		return nil, err
	}

	tz := cfg.TimeZone
	if tz == nil {
		tz = time.UTC
	}
	now := logging.CtxTime(ctx).In(tz)

	importDate := model.ImportDate(now)
	logger := logging.From(ctx)
	logger.Info("import date", slog.String("import_date", importDate))

	fileName := model.ExportFileName(now)
	destURI, err := model.GCSURI(cfg.Bucket, fileName)
	if err != nil {
		return nil, err
	}

	input := &model.ExtractTableInput{
		Source:         cfg.Table,
		DestinationURI: destURI,
		Location:       cfg.Location,
	}
	logger.Info("starting table export",
		slog.String("table", cfg.Table.String()),
		slog.String("destination", destURI),
		slog.Any("location", cfg.Location),
	)

	out, err := bq.ExtractTable(ctx, input)
	if err != nil {
		x.putExportRecord(ctx, &model.ExportRecord{
			Table:          cfg.Table.String(),
			DestinationURI: destURI,
			Status:         types.RecordStatusFailed,
			CreatedAt:      now,
		})
		return nil, goerr.Wrap(err, "failed to export table",
			goerr.V("table", cfg.Table.String()),
			goerr.V("destination", destURI),
		)
	}

	result := &model.ExportTableOutput{
		ImportDate:     importDate,
		DestinationURI: destURI,
		JobID:          out.JobID,
	}

	if storage := x.clients.Storage(); storage != nil {
		attrs, err := storage.Attrs(ctx, cfg.Bucket, fileName)
		switch {
		case err != nil:
			errutil.HandleError(ctx, "failed to get exported object attributes", err)
		case attrs == nil:
			logger.Warn("exported object is not found", slog.String("destination", destURI))
		default:
			result.Object = attrs
		}
	}

	record := &model.ExportRecord{
		Table:          cfg.Table.String(),
		DestinationURI: destURI,
		JobID:          out.JobID,
		Status:         types.RecordStatusSucceeded,
		CreatedAt:      now,
	}
	if result.Object != nil {
		record.ObjectSize = result.Object.Size
	}
	x.putExportRecord(ctx, record)

	logger.Info("table export finished",
		slog.String("job_id", out.JobID),
		slog.String("destination", destURI),
	)

	return result, nil
}

// putExportRecord keeps history if a repository is configured. The export
// itself is already done at this point, so a failure is only reported.
func (x *UseCase) putExportRecord(ctx context.Context, record *model.ExportRecord) {
	repo := x.clients.HistoryRepository()
	if repo == nil {
		return
	}

	record.ID = types.NewRecordID()
	if err := repo.PutExport(ctx, record); err != nil {
		errutil.HandleError(ctx, "failed to put export record", err)
	}
}
