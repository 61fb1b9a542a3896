package bq

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type Client struct {
	bqClient *bigquery.Client
	project  types.GoogleProjectID
}

var _ interfaces.BigQuery = (*Client)(nil)

// New creates a BigQuery client. projectID is the project that runs (and is
// billed for) extract jobs; the source table may live in another project.
func New(ctx context.Context, projectID types.GoogleProjectID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		project:  projectID,
	}, nil
}

// ExtractTable implements interfaces.BigQuery. It exports the table as CSV
// and waits until the job is done.
func (x *Client) ExtractTable(ctx context.Context, input *model.ExtractTableInput) (*model.ExtractTableOutput, error) {
	src := input.Source
	gcsRef := bigquery.NewGCSReference(input.DestinationURI)
	gcsRef.DestinationFormat = bigquery.CSV

	extractor := x.bqClient.
		DatasetInProject(src.ProjectID.String(), src.DatasetID.String()).
		Table(src.TableID.String()).
		ExtractorTo(gcsRef)
	// Location must match that of the source table.
	extractor.Location = input.Location.String()

	job, err := extractor.Run(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start extract job",
			goerr.V("table", src.String()),
			goerr.V("destination", input.DestinationURI),
			goerr.V("location", input.Location),
		)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to wait extract job",
			goerr.V("jobID", job.ID()),
			goerr.V("table", src.String()),
		)
	}
	if err := status.Err(); err != nil {
		return nil, goerr.Wrap(err, "extract job failed",
			goerr.V("jobID", job.ID()),
			goerr.V("table", src.String()),
			goerr.V("destination", input.DestinationURI),
		)
	}

	return &model.ExtractTableOutput{
		JobID: job.ID(),
	}, nil
}

func (x *Client) Close() error {
	return x.bqClient.Close()
}
