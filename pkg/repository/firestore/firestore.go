package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type Option func(*historyRepository)

// WithCollectionPrefix prepends prefix to the collection names. Tests use it
// to keep their records apart from each other.
func WithCollectionPrefix(prefix string) Option {
	return func(r *historyRepository) {
		r.exports = prefix + collectionExport
		r.ingestions = prefix + collectionIngestion
	}
}

// WithClientOptions passes options to the Firestore client, e.g. an
// impersonated token source.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(r *historyRepository) {
		r.clientOptions = append(r.clientOptions, opts...)
	}
}

// New creates a Firestore history repository. databaseID falls back to the
// default database when empty.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.HistoryRepository, error) {
	repo := &historyRepository{
		exports:    collectionExport,
		ingestions: collectionIngestion,
	}
	for _, opt := range options {
		opt(repo)
	}

	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, repo.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}
	repo.client = client

	return repo, nil
}
