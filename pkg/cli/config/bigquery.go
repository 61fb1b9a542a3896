package config

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra/bq"
	"github.com/m-mizutani/bq2ee/pkg/infra/gcs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID                 types.GoogleProjectID
	datasetID                 types.BQDatasetID
	tableID                   types.BQTableID
	location                  types.BQLocation
	impersonateServiceAccount types.ServiceAccount
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "Project ID of the exported table, also used to run the extract job",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("BQ2EE_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "Dataset ID of the exported table",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("BQ2EE_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "Table ID of the exported table",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("BQ2EE_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-location",
			Usage:       "Processing location of the extract job",
			Category:    "BigQuery",
			Value:       types.DefaultBQLocation.String(),
			Destination: (*string)(&x.location),
			Sources:     cli.EnvVars("BQ2EE_BIGQUERY_LOCATION"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: (*string)(&x.impersonateServiceAccount),
			Sources:     cli.EnvVars("BQ2EE_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Any("Location", x.location),
		slog.Any("ImpersonateServiceAccount", x.impersonateServiceAccount),
	)
}

// Table returns the exported table. It fails when any part is missing.
func (x *BigQuery) Table() (model.TableRef, error) {
	ref := model.TableRef{
		ProjectID: x.projectID,
		DatasetID: x.datasetID,
		TableID:   x.tableID,
	}
	if err := ref.Validate(); err != nil {
		return model.TableRef{}, err
	}
	return ref, nil
}

func (x *BigQuery) Location() types.BQLocation {
	return x.location
}

// NewClient returns nil without error when project ID is not set.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.projectID == "" {
		return nil, nil
	}

	opts, err := clientOptions(ctx, x.impersonateServiceAccount, bigquery.Scope, cloudPlatformScope)
	if err != nil {
		return nil, err
	}

	client, err := bq.New(ctx, x.projectID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	}
	return client, nil
}

// NewStorageClient returns a Cloud Storage client acting as the same identity
// as the extract job, which is the one writing export files.
func (x *BigQuery) NewStorageClient(ctx context.Context) (*gcs.Client, error) {
	opts, err := clientOptions(ctx, x.impersonateServiceAccount, storage.ScopeReadOnly)
	if err != nil {
		return nil, err
	}

	client, err := gcs.New(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}
	return client, nil
}
