package cli_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/bq2ee/pkg/cli"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRun(t *testing.T) {
	t.Run("export without BigQuery configuration fails", func(t *testing.T) {
		err := cli.New().Run([]string{"bq2ee", "export"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("ingest without Earth Engine configuration fails", func(t *testing.T) {
		err := cli.New().Run([]string{"bq2ee", "ingest", "--bucket", "b", "--name", "data.csv"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("ingest requires bucket and name", func(t *testing.T) {
		gt.Error(t, cli.New().Run([]string{"bq2ee", "ingest", "--bucket", "b"}))
	})

	t.Run("status requires a task ID", func(t *testing.T) {
		err := cli.New().Run([]string{"bq2ee", "status"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("history works with in-memory repository", func(t *testing.T) {
		gt.NoError(t, cli.New().Run([]string{"bq2ee", "history", "--limit", "5"}))
	})

	t.Run("invalid log level", func(t *testing.T) {
		err := cli.New().Run([]string{"bq2ee", "--log-level", "verbose", "history"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
