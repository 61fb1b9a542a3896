package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/cli/config"
	"github.com/m-mizutani/bq2ee/pkg/controller/server"
	"github.com/m-mizutani/bq2ee/pkg/utils/errutil"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// backgroundTimeout bounds how long shutdown waits for wait=false exports.
const backgroundTimeout = 10 * time.Minute

func waitBackground(s *server.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logging.Default().Info("waiting for background exports", slog.Duration("timeout", timeout))
	if err := s.WaitBackground(ctx); err != nil {
		errutil.HandleError(ctx, "background exports did not finish before shutdown", err)
	}
}

func serveCommand() *cli.Command {
	var (
		addr string

		app    appConfig
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("BQ2EE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode, receives export and ingestion triggers over HTTP",
		Flags: slice.Flatten(
			serveFlags,
			app.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Config", &app),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			uc, cleanup, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := server.New(uc)
			// Runs before cleanup so that background exports finish with open clients.
			defer waitBackground(s, backgroundTimeout)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Export triggers wait for the extract job to finish.
				WriteTimeout: 15 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
