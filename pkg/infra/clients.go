package infra

import (
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
)

type Clients struct {
	bqClient          interfaces.BigQuery
	storageClient     interfaces.Storage
	eeClient          interfaces.EarthEngine
	historyRepository interfaces.HistoryRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storageClient
}
func (x *Clients) EarthEngine() interfaces.EarthEngine {
	return x.eeClient
}
func (x *Clients) HistoryRepository() interfaces.HistoryRepository {
	return x.historyRepository
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithStorage(client interfaces.Storage) Option {
	return func(x *Clients) {
		x.storageClient = client
	}
}

func WithEarthEngine(client interfaces.EarthEngine) Option {
	return func(x *Clients) {
		x.eeClient = client
	}
}

func WithHistoryRepository(repo interfaces.HistoryRepository) Option {
	return func(x *Clients) {
		x.historyRepository = repo
	}
}
