package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Export struct {
	bucket   types.BucketName
	timeZone string
}

func (x *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "export-bucket",
			Usage:       "Cloud Storage bucket receiving exported CSV files",
			Category:    "Export",
			Destination: (*string)(&x.bucket),
			Sources:     cli.EnvVars("BQ2EE_EXPORT_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "export-timezone",
			Usage:       "Time zone deciding the date in export file names",
			Category:    "Export",
			Value:       "UTC",
			Destination: &x.timeZone,
			Sources:     cli.EnvVars("BQ2EE_EXPORT_TIMEZONE"),
		},
	}
}

func (x *Export) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Bucket", x.bucket),
		slog.String("TimeZone", x.timeZone),
	)
}

func (x *Export) Bucket() types.BucketName {
	return x.bucket
}

func (x *Export) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(x.timeZone)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid export time zone",
			goerr.V("timeZone", x.timeZone),
			goerr.V("error", err.Error()),
		)
	}
	return loc, nil
}
