package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func ingestCommand() *cli.Command {
	var (
		app appConfig
		ev  model.StorageObjectEvent
	)

	return &cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Submit an Earth Engine table ingestion for a Cloud Storage object",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "bucket",
				Aliases:     []string{"b"},
				Usage:       "Bucket of the CSV object",
				Required:    true,
				Destination: (*string)(&ev.Bucket),
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Object name of the CSV object",
				Required:    true,
				Destination: (*string)(&ev.Name),
			},
		}, app.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := uc.IngestObject(ctx, &ev)
			if err != nil {
				return err
			}

			logging.Default().Info("ingestion submitted",
				slog.Any("task_id", out.TaskID),
				slog.String("asset", out.AssetName),
				slog.String("source", out.SourceURI),
				slog.Any("operation", out.Operation),
			)
			return nil
		},
	}
}
