package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/bq2ee/pkg/cli/config"
	"github.com/m-mizutani/bq2ee/pkg/infra"
	"github.com/m-mizutani/bq2ee/pkg/usecase"
	"github.com/m-mizutani/bq2ee/pkg/utils/safe"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// appConfig holds the configuration shared by commands that run the
// export and ingestion flows.
type appConfig struct {
	bigQuery    config.BigQuery
	export      config.Export
	earthEngine config.EarthEngine
	firestore   config.Firestore
}

func (x *appConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.bigQuery.Flags(),
		x.export.Flags(),
		x.earthEngine.Flags(),
		x.firestore.Flags(),
	)
}

func (x *appConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Export", &x.export),
		slog.Any("EarthEngine", &x.earthEngine),
		slog.Any("Firestore", &x.firestore),
	)
}

// newUseCase builds clients from the configuration. Clients whose project ID
// is not given are left out, and the use case reports it when the flow that
// needs the client runs. The returned function closes the clients.
func (x *appConfig) newUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	var (
		closers       []io.Closer
		infraOptions  []infra.Option
		useCaseOption []usecase.Option
	)
	cleanup := func() { safe.CloseAll(closers) }

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, nil, err
	} else if bqClient != nil {
		closers = append(closers, bqClient)
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))

		table, err := x.bigQuery.Table()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		tz, err := x.export.Location()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		useCaseOption = append(useCaseOption, usecase.WithExportConfig(usecase.ExportConfig{
			Table:    table,
			Bucket:   x.export.Bucket(),
			Location: x.bigQuery.Location(),
			TimeZone: tz,
		}))

		gcsClient, err := x.bigQuery.NewStorageClient(ctx)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, gcsClient)
		infraOptions = append(infraOptions, infra.WithStorage(gcsClient))
	}

	if eeClient, err := x.earthEngine.NewClient(ctx); err != nil {
		cleanup()
		return nil, nil, err
	} else if eeClient != nil {
		infraOptions = append(infraOptions, infra.WithEarthEngine(eeClient))
		useCaseOption = append(useCaseOption, usecase.WithIngestConfig(usecase.IngestConfig{
			ProjectID:    x.earthEngine.ProjectID(),
			CSVDelimiter: x.earthEngine.CSVDelimiter(),
		}))
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	infraOptions = append(infraOptions, infra.WithHistoryRepository(repo))

	return usecase.New(infra.New(infraOptions...), useCaseOption...), cleanup, nil
}
