package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func printJSON(c *cli.Command, v any) error {
	w := c.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}

func statusCommand() *cli.Command {
	var app appConfig

	return &cli.Command{
		Name:      "status",
		Usage:     "Show the state of a submitted ingestion task",
		ArgsUsage: "<task ID or operation name>",
		Flags:     app.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one task ID is required")
			}

			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			status, err := uc.GetIngestionStatus(ctx, types.TaskID(c.Args().First()))
			if err != nil {
				return err
			}

			return printJSON(c, status)
		},
	}
}

func latestCommand() *cli.Command {
	var app appConfig

	return &cli.Command{
		Name:  "latest",
		Usage: "Show the most recent dated asset in the Earth Engine project",
		Flags: app.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			asset, err := uc.LatestAsset(ctx)
			if err != nil {
				return err
			}

			return printJSON(c, asset)
		},
	}
}

func historyCommand() *cli.Command {
	var (
		app   appConfig
		limit int64
	)

	return &cli.Command{
		Name:  "history",
		Usage: "Show recent exports and ingestions recorded in Firestore",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Maximum number of records per kind",
				Value:       model.DefaultHistoryLimit,
				Destination: &limit,
			},
		}, app.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			history, err := uc.ListHistory(ctx, int(limit))
			if err != nil {
				return err
			}

			return printJSON(c, history)
		},
	}
}
