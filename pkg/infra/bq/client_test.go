package bq_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra/bq"
	"github.com/m-mizutani/bq2ee/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

func extractInput(t *testing.T, projectID, datasetID, tableID, bucket string) *model.ExtractTableInput {
	t.Helper()
	name := types.ObjectName("bq2ee_test/" + time.Now().Format("20060102_150405_") + model.ExportFileName(time.Now()).String())
	uri := gt.R1(model.GCSURI(types.BucketName(bucket), name)).NoError(t)

	return &model.ExtractTableInput{
		Source: model.TableRef{
			ProjectID: types.GoogleProjectID(projectID),
			DatasetID: types.BQDatasetID(datasetID),
			TableID:   types.BQTableID(tableID),
		},
		DestinationURI: uri,
		Location:       types.BQLocation(testutil.GetEnvOrDefault("TEST_BIGQUERY_LOCATION", types.DefaultBQLocation.String())),
	}
}

func TestExtractTable(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	tableID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_TABLE_ID")
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID))).NoError(t)
	defer client.Close()

	out := gt.R1(client.ExtractTable(ctx, extractInput(t, projectID, datasetID, tableID, bucket))).NoError(t)
	gt.V(t, out.JobID).NotEqual("")
}

func TestExtractTableWithImpersonation(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	tableID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_TABLE_ID")
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	serviceAccount := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")

	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), option.WithTokenSource(ts))).NoError(t)
	defer client.Close()

	gt.R1(client.ExtractTable(ctx, extractInput(t, projectID, datasetID, tableID, bucket))).NoError(t)
}

func TestExtractTableErrors(t *testing.T) {
	t.Run("non-existent table fails", func(t *testing.T) {
		projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
		datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
		bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")

		ctx := context.Background()
		client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID))).NoError(t)
		defer client.Close()

		_, err := client.ExtractTable(ctx, extractInput(t, projectID, datasetID, "non_existent_table_999999", bucket))
		gt.Error(t, err)
	})
}
