package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/repository/firestore"
	"github.com/m-mizutani/bq2ee/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

type Firestore struct {
	projectID                 types.GoogleProjectID
	databaseID                string
	collectionPrefix          string
	impersonateServiceAccount types.ServiceAccount
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID storing export and ingestion history (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BQ2EE_FIRESTORE_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BQ2EE_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of history collection names",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BQ2EE_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
		&cli.StringFlag{
			Name:        "firestore-impersonate-service-account",
			Usage:       "Service account to impersonate for Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BQ2EE_FIRESTORE_IMPERSONATE_SERVICE_ACCOUNT"),
			Destination: (*string)(&x.impersonateServiceAccount),
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.String("collectionPrefix", x.collectionPrefix),
		slog.Any("impersonateServiceAccount", x.impersonateServiceAccount),
	)
}

// NewRepository returns the Firestore history repository, or an in-memory one
// when Firestore is not configured. The in-memory history lives only as long
// as the process.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.HistoryRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}

	opts, err := clientOptions(ctx, x.impersonateServiceAccount, datastoreScope, cloudPlatformScope)
	if err != nil {
		return nil, err
	}

	return firestore.New(ctx, x.projectID.String(), x.databaseID,
		firestore.WithCollectionPrefix(x.collectionPrefix),
		firestore.WithClientOptions(opts...),
	)
}
