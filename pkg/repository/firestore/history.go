package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionExport    = "exports"
	collectionIngestion = "ingestions"
)

type historyRepository struct {
	client        *firestore.Client
	clientOptions []option.ClientOption
	exports       string
	ingestions    string
}

// ToDocID validates that id can be used as a Firestore document ID
func ToDocID(id string) (string, error) {
	if id == "" || id == "." || id == ".." {
		return "", goerr.Wrap(repository.ErrInvalidInput, "invalid document ID", goerr.V("id", id))
	}
	if strings.Contains(id, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "document ID contains invalid character '/'", goerr.V("id", id))
	}
	return id, nil
}

// Export operations

func (r *historyRepository) PutExport(ctx context.Context, record *model.ExportRecord) error {
	docID, err := ToDocID(record.ID.String())
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(r.exports).Doc(docID).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put export record", goerr.V("id", record.ID))
	}

	return nil
}

func (r *historyRepository) GetExport(ctx context.Context, id types.RecordID) (*model.ExportRecord, error) {
	docID, err := ToDocID(id.String())
	if err != nil {
		return nil, err
	}

	snap, err := r.client.Collection(r.exports).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "export record not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get export record", goerr.V("id", id))
	}

	var record model.ExportRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode export record", goerr.V("id", id))
	}

	return &record, nil
}

func (r *historyRepository) ListExports(ctx context.Context, limit int) ([]*model.ExportRecord, error) {
	query := r.client.Collection(r.exports).OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.ExportRecord
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate export records")
		}

		var record model.ExportRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode export record")
		}
		records = append(records, &record)
	}

	return records, nil
}

// Ingestion operations

func (r *historyRepository) PutIngestion(ctx context.Context, record *model.IngestionRecord) error {
	docID, err := ToDocID(record.TaskID.String())
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(r.ingestions).Doc(docID).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put ingestion record", goerr.V("taskID", record.TaskID))
	}

	return nil
}

func (r *historyRepository) GetIngestion(ctx context.Context, taskID types.TaskID) (*model.IngestionRecord, error) {
	docID, err := ToDocID(taskID.String())
	if err != nil {
		return nil, err
	}

	snap, err := r.client.Collection(r.ingestions).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "ingestion record not found", goerr.V("taskID", taskID))
		}
		return nil, goerr.Wrap(err, "failed to get ingestion record", goerr.V("taskID", taskID))
	}

	var record model.IngestionRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode ingestion record", goerr.V("taskID", taskID))
	}

	return &record, nil
}

func (r *historyRepository) ListIngestions(ctx context.Context, limit int) ([]*model.IngestionRecord, error) {
	query := r.client.Collection(r.ingestions).OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.IngestionRecord
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate ingestion records")
		}

		var record model.IngestionRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode ingestion record")
		}
		records = append(records, &record)
	}

	return records, nil
}
