package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra/ee"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type EarthEngine struct {
	projectID                 types.GoogleProjectID
	csvDelimiter              types.CSVDelimiter
	impersonateServiceAccount types.ServiceAccount
}

func (x *EarthEngine) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "earthengine-project-id",
			Usage:       "Cloud project owning the Earth Engine asset catalog",
			Category:    "Earth Engine",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("BQ2EE_EARTHENGINE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "earthengine-csv-delimiter",
			Usage:       "Field delimiter of ingested CSV files",
			Category:    "Earth Engine",
			Value:       types.DefaultCSVDelimiter.String(),
			Destination: (*string)(&x.csvDelimiter),
			Sources:     cli.EnvVars("BQ2EE_EARTHENGINE_CSV_DELIMITER"),
		},
		&cli.StringFlag{
			Name:        "earthengine-impersonate-service-account",
			Usage:       "Service account to impersonate for Earth Engine",
			Category:    "Earth Engine",
			Destination: (*string)(&x.impersonateServiceAccount),
			Sources:     cli.EnvVars("BQ2EE_EARTHENGINE_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *EarthEngine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("CSVDelimiter", x.csvDelimiter),
		slog.Any("ImpersonateServiceAccount", x.impersonateServiceAccount),
	)
}

func (x *EarthEngine) ProjectID() types.GoogleProjectID {
	return x.projectID
}

func (x *EarthEngine) CSVDelimiter() types.CSVDelimiter {
	return x.csvDelimiter
}

// NewClient returns nil without error when project ID is not set.
func (x *EarthEngine) NewClient(ctx context.Context) (*ee.Client, error) {
	if x.projectID == "" {
		return nil, nil
	}
	if len(x.csvDelimiter) != 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "CSV delimiter must be a single character",
			goerr.V("delimiter", x.csvDelimiter),
		)
	}

	opts, err := clientOptions(ctx, x.impersonateServiceAccount, ee.Scopes...)
	if err != nil {
		return nil, err
	}

	client, err := ee.New(ctx, x.projectID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Earth Engine client")
	}
	return client, nil
}
