package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/repository"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// GetIngestionStatus looks up the state of a submitted ingestion task. id is
// either a task ID or a full operation name.
func (x *UseCase) GetIngestionStatus(ctx context.Context, id types.TaskID) (*model.IngestionStatus, error) {
	ee := x.clients.EarthEngine()
	if ee == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Earth Engine client is not configured")
	}
	if id == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "task ID is empty")
	}

	opName := model.OperationName(x.ingest.ProjectID, id)

	if repo := x.clients.HistoryRepository(); repo != nil {
		record, err := repo.GetIngestion(ctx, id)
		switch {
		case err == nil && record.Operation != "":
			opName = record.Operation
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}

	return ee.GetOperation(ctx, opName)
}

// LatestAsset returns the most recent asset whose name is an export date,
// ignoring assets dated after now.
func (x *UseCase) LatestAsset(ctx context.Context) (*model.Asset, error) {
	ee := x.clients.EarthEngine()
	if ee == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Earth Engine client is not configured")
	}
	if x.ingest.ProjectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Earth Engine project ID is not configured")
	}

	assets, err := ee.ListAssets(ctx, x.ingest.ProjectID)
	if err != nil {
		return nil, err
	}

	latest := model.LatestDatedAsset(assets, logging.CtxTime(ctx))
	if latest == nil {
		return nil, goerr.Wrap(types.ErrAssetNotFound, "no dated asset found",
			goerr.V("project", x.ingest.ProjectID),
			goerr.V("assets", len(assets)),
		)
	}

	return latest, nil
}
