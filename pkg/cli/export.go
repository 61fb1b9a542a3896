package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var app appConfig

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export the BigQuery table to the export bucket as a dated CSV file",
		Flags:   app.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting export", slog.Any("Config", &app))

			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := uc.ExportTable(ctx)
			if err != nil {
				return err
			}

			logging.Default().Info("export completed",
				slog.String("destination", out.DestinationURI),
				slog.String("job_id", out.JobID),
			)
			return nil
		},
	}
}
