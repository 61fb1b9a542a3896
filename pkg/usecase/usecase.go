package usecase

import (
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	export  ExportConfig
	ingest  IngestConfig
}

// ExportConfig identifies the exported table and where its CSV goes.
type ExportConfig struct {
	Table    model.TableRef
	Bucket   types.BucketName
	Location types.BQLocation
	// TimeZone decides the date used for the file name. UTC if nil.
	TimeZone *time.Location
}

// IngestConfig identifies the asset catalog that receives created objects.
type IngestConfig struct {
	ProjectID    types.GoogleProjectID
	CSVDelimiter types.CSVDelimiter
}

type Option func(*UseCase)

func WithExportConfig(cfg ExportConfig) Option {
	return func(x *UseCase) {
		x.export = cfg
	}
}

func WithIngestConfig(cfg IngestConfig) Option {
	return func(x *UseCase) {
		x.ingest = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		export: ExportConfig{
			Location: types.DefaultBQLocation,
		},
		ingest: IngestConfig{
			CSVDelimiter: types.DefaultCSVDelimiter,
		},
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
