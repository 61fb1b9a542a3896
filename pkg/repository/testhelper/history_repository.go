package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for HistoryRepository
// This is the main entry point for testing any HistoryRepository implementation
func TestAll(t *testing.T, repo interfaces.HistoryRepository) {
	t.Run("ExportPutGet", func(t *testing.T) {
		TestExportPutGet(t, repo)
	})
	t.Run("ExportList", func(t *testing.T) {
		TestExportList(t, repo)
	})
	t.Run("IngestionPutGet", func(t *testing.T) {
		TestIngestionPutGet(t, repo)
	})
	t.Run("IngestionList", func(t *testing.T) {
		TestIngestionList(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
}

// Firestore keeps timestamps in microseconds
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// TestExportPutGet tests put and get of an export record including overwrite
func TestExportPutGet(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	record := &model.ExportRecord{
		ID:             types.NewRecordID(),
		Table:          "project.dataset.table",
		DestinationURI: "gs://bucket/Jan-9-2024.csv",
		JobID:          "job_" + uuid.NewString(),
		ObjectSize:     1024,
		Status:         types.RecordStatusSucceeded,
		CreatedAt:      now(),
	}
	gt.NoError(t, repo.PutExport(ctx, record))

	got, err := repo.GetExport(ctx, record.ID)
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(record.ID)
	gt.V(t, got.Table).Equal(record.Table)
	gt.V(t, got.DestinationURI).Equal(record.DestinationURI)
	gt.V(t, got.JobID).Equal(record.JobID)
	gt.V(t, got.ObjectSize).Equal(record.ObjectSize)
	gt.V(t, got.Status).Equal(record.Status)
	gt.True(t, got.CreatedAt.Equal(record.CreatedAt))

	// Overwrite
	record.Status = types.RecordStatusFailed
	gt.NoError(t, repo.PutExport(ctx, record))

	got, err = repo.GetExport(ctx, record.ID)
	gt.NoError(t, err)
	gt.V(t, got.Status).Equal(types.RecordStatusFailed)

	// Modifying the returned record must not change the stored one
	got.Table = "modified"
	again, err := repo.GetExport(ctx, record.ID)
	gt.NoError(t, err)
	gt.V(t, again.Table).Equal(record.Table)
}

// TestExportList tests that export records are listed newest first
func TestExportList(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()
	base := now().Add(time.Hour)

	older := &model.ExportRecord{ID: types.NewRecordID(), Status: types.RecordStatusSucceeded, CreatedAt: base}
	newer := &model.ExportRecord{ID: types.NewRecordID(), Status: types.RecordStatusSucceeded, CreatedAt: base.Add(time.Minute)}
	gt.NoError(t, repo.PutExport(ctx, older))
	gt.NoError(t, repo.PutExport(ctx, newer))

	records, err := repo.ListExports(ctx, 2)
	gt.NoError(t, err)
	gt.A(t, records).Length(2)
	gt.V(t, records[0].ID).Equal(newer.ID)
	gt.V(t, records[1].ID).Equal(older.ID)
}

// TestIngestionPutGet tests put and get of an ingestion record
func TestIngestionPutGet(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	taskID := types.TaskID(uuid.NewString())
	record := &model.IngestionRecord{
		TaskID:    taskID,
		AssetName: "projects/my-project/assets/plantboundaries",
		SourceURI: "gs://ee_export_bucket/plantboundaries.csv",
		Operation: types.OperationName("projects/my-project/operations/" + taskID.String()),
		Status:    types.RecordStatusSubmitted,
		CreatedAt: now(),
	}
	gt.NoError(t, repo.PutIngestion(ctx, record))

	got, err := repo.GetIngestion(ctx, taskID)
	gt.NoError(t, err)
	gt.V(t, got.TaskID).Equal(taskID)
	gt.V(t, got.AssetName).Equal(record.AssetName)
	gt.V(t, got.SourceURI).Equal(record.SourceURI)
	gt.V(t, got.Operation).Equal(record.Operation)
	gt.V(t, got.Status).Equal(types.RecordStatusSubmitted)
	gt.True(t, got.CreatedAt.Equal(record.CreatedAt))
}

// TestIngestionList tests that ingestion records are listed newest first
func TestIngestionList(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()
	base := now().Add(2 * time.Hour)

	older := &model.IngestionRecord{TaskID: types.TaskID(uuid.NewString()), Status: types.RecordStatusSubmitted, CreatedAt: base}
	newer := &model.IngestionRecord{TaskID: types.TaskID(uuid.NewString()), Status: types.RecordStatusSubmitted, CreatedAt: base.Add(time.Minute)}
	gt.NoError(t, repo.PutIngestion(ctx, older))
	gt.NoError(t, repo.PutIngestion(ctx, newer))

	records, err := repo.ListIngestions(ctx, 2)
	gt.NoError(t, err)
	gt.A(t, records).Length(2)
	gt.V(t, records[0].TaskID).Equal(newer.TaskID)
	gt.V(t, records[1].TaskID).Equal(older.TaskID)

	all, err := repo.ListIngestions(ctx, 0)
	gt.NoError(t, err)
	gt.True(t, len(all) >= 2)
}

// TestNotFound tests that missing records return repository.ErrNotFound
func TestNotFound(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	_, err := repo.GetExport(ctx, types.NewRecordID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.GetIngestion(ctx, types.TaskID(uuid.NewString()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
