package server_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/controller/server"
	"github.com/m-mizutani/bq2ee/pkg/domain/mock"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/infra"
	"github.com/m-mizutani/bq2ee/pkg/usecase"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		clients := infra.New()
		uc := usecase.New(clients)
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("unknown route returns 404", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestExportTrigger(t *testing.T) {
	t.Run("export succeeds and returns destination", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				return &model.ExportTableOutput{
					ImportDate:     "Jan-9-2024",
					DestinationURI: "gs://my-bucket/Jan-9-2024.csv",
					JobID:          "job-1",
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export", bytes.NewReader([]byte(`{"tick":1}`)))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, mockUC.ExportTableCalls()).Length(1)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp["destination"]).Equal("gs://my-bucket/Jan-9-2024.csv")
		gt.V(t, resp["job_id"]).Equal("job-1")
	})

	t.Run("export failure returns 500", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				return nil, goerr.New("extract job failed")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})

	t.Run("wait=false runs export in background", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				defer wg.Done()
				return &model.ExportTableOutput{DestinationURI: "gs://b/Jan-9-2024.csv"}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export?wait=false", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("background export was not executed")
		}
	})
}

func TestIngestTrigger(t *testing.T) {
	newMock := func() *mock.UseCaseMock {
		return &mock.UseCaseMock{
			IngestObjectFunc: func(ctx context.Context, ev *model.StorageObjectEvent) (*model.IngestObjectOutput, error) {
				return &model.IngestObjectOutput{
					TaskID:    "task-1",
					AssetName: "projects/p/assets/plantboundaries",
					SourceURI: "gs://ee_export_bucket/plantboundaries.csv",
					Operation: "projects/p/operations/task-1",
				}, nil
			},
		}
	}

	t.Run("bare object resource", func(t *testing.T) {
		mockUC := newMock()
		srv := server.New(mockUC)

		body := []byte(`{"bucket":"ee_export_bucket","name":"plantboundaries.csv","contentType":"text/csv","size":"1024"}`)
		req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		calls := mockUC.IngestObjectCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Ev.Bucket).Equal(types.BucketName("ee_export_bucket"))
		gt.V(t, calls[0].Ev.Name).Equal(types.ObjectName("plantboundaries.csv"))

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp["task_id"]).Equal("task-1")
	})

	t.Run("pub/sub push envelope", func(t *testing.T) {
		mockUC := newMock()
		srv := server.New(mockUC)

		data := base64.StdEncoding.EncodeToString([]byte(`{"bucket":"b","name":"dir/data.csv"}`))
		body := []byte(`{"message":{"data":"` + data + `","messageId":"1"},"subscription":"projects/p/subscriptions/s"}`)
		req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		calls := mockUC.IngestObjectCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Ev.Name).Equal(types.ObjectName("dir/data.csv"))
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		mockUC := newMock()
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader([]byte(`not json`)))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.IngestObjectCalls()).Length(0)
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		mockUC := newMock()
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader([]byte(`{"bucket":"b"}`)))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.IngestObjectCalls()).Length(0)
	})

	t.Run("upstream failure returns 500", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			IngestObjectFunc: func(ctx context.Context, ev *model.StorageObjectEvent) (*model.IngestObjectOutput, error) {
				return nil, goerr.New("import rejected")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader([]byte(`{"bucket":"b","name":"x.csv"}`)))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestIngestionLookup(t *testing.T) {
	t.Run("GET /ingestion/{taskID}", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GetIngestionStatusFunc: func(ctx context.Context, id types.TaskID) (*model.IngestionStatus, error) {
				return &model.IngestionStatus{
					Operation: types.OperationName("projects/p/operations/" + id.String()),
					State:     "SUCCEEDED",
					Done:      true,
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/ingestion/task-9", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		calls := mockUC.GetIngestionStatusCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Id).Equal(types.TaskID("task-9"))

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp["state"]).Equal("SUCCEEDED")
		gt.V(t, resp["done"]).Equal(true)
	})

	t.Run("GET /ingestion/latest", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			LatestAssetFunc: func(ctx context.Context) (*model.Asset, error) {
				return &model.Asset{Name: "projects/p/assets/Jan-9-2024", ID: "Jan-9-2024", Type: "TABLE"}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/ingestion/latest", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, mockUC.LatestAssetCalls()).Length(1)
		gt.A(t, mockUC.GetIngestionStatusCalls()).Length(0)
	})

	t.Run("no dated asset returns 404", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			LatestAssetFunc: func(ctx context.Context) (*model.Asset, error) {
				return nil, goerr.Wrap(types.ErrAssetNotFound, "no dated asset")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/ingestion/latest", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestHistory(t *testing.T) {
	t.Run("limit is passed to usecase", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListHistoryFunc: func(ctx context.Context, limit int) (*model.History, error) {
				return &model.History{
					Ingestions: []*model.IngestionRecord{{TaskID: "task-1"}},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/history?limit=5", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		calls := mockUC.ListHistoryCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Limit).Equal(5)

		var resp model.History
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.Ingestions).Length(1)
		gt.V(t, resp.Ingestions[0].TaskID).Equal(types.TaskID("task-1"))
	})

	t.Run("invalid limit returns 400", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/history?limit=abc", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.ListHistoryCalls()).Length(0)
	})
}

func TestIngestTriggerEventType(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte(`{"bucket":"b","name":"gone.csv"}`))
	pushBody := func(eventType string) []byte {
		return []byte(`{"message":{"data":"` + data + `","attributes":{"eventType":"` + eventType + `","objectId":"gone.csv"},"messageId":"1"}}`)
	}
	objectBody := []byte(`{"bucket":"b","name":"gone.csv"}`)

	testCases := map[string]struct {
		body      []byte
		ceType    string
		wantCode  int
		submitted bool
	}{
		"pubsub finalize":        {body: pushBody("OBJECT_FINALIZE"), wantCode: http.StatusAccepted, submitted: true},
		"pubsub delete":          {body: pushBody("OBJECT_DELETE"), wantCode: http.StatusOK},
		"pubsub metadata update": {body: pushBody("OBJECT_METADATA_UPDATE"), wantCode: http.StatusOK},
		"pubsub archive":         {body: pushBody("OBJECT_ARCHIVE"), wantCode: http.StatusOK},
		"eventarc finalized":     {body: objectBody, ceType: "google.cloud.storage.object.v1.finalized", wantCode: http.StatusAccepted, submitted: true},
		"eventarc deleted":       {body: objectBody, ceType: "google.cloud.storage.object.v1.deleted", wantCode: http.StatusOK},
		"direct request":         {body: objectBody, wantCode: http.StatusAccepted, submitted: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			mockUC := &mock.UseCaseMock{
				IngestObjectFunc: func(ctx context.Context, ev *model.StorageObjectEvent) (*model.IngestObjectOutput, error) {
					return &model.IngestObjectOutput{TaskID: "task-1"}, nil
				},
			}
			srv := server.New(mockUC)

			req := httptest.NewRequest(http.MethodPost, "/trigger/ingest", bytes.NewReader(tc.body))
			if tc.ceType != "" {
				req.Header.Set("ce-type", tc.ceType)
			}
			rec := httptest.NewRecorder()

			srv.Mux().ServeHTTP(rec, req)

			gt.V(t, rec.Code).Equal(tc.wantCode)
			if tc.submitted {
				gt.A(t, mockUC.IngestObjectCalls()).Length(1)
			} else {
				gt.A(t, mockUC.IngestObjectCalls()).Length(0)
			}
		})
	}
}

func TestWaitBackground(t *testing.T) {
	t.Run("waits for background export to finish", func(t *testing.T) {
		release := make(chan struct{})
		var finished atomic.Bool
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				<-release
				finished.Store(true)
				return &model.ExportTableOutput{DestinationURI: "gs://b/Jan-9-2024.csv"}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export?wait=false", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		go func() {
			time.Sleep(50 * time.Millisecond)
			close(release)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		gt.NoError(t, srv.WaitBackground(ctx))
		gt.True(t, finished.Load())
	})

	t.Run("gives up when timeout expires", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				<-release
				return &model.ExportTableOutput{}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export?wait=false", nil)
		srv.Mux().ServeHTTP(httptest.NewRecorder(), req)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		gt.Error(t, srv.WaitBackground(ctx))
	})

	t.Run("returns immediately without background work", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		gt.NoError(t, srv.WaitBackground(context.Background()))
	})

	t.Run("background export keeps request ID", func(t *testing.T) {
		idCh := make(chan types.RequestID, 1)
		mockUC := &mock.UseCaseMock{
			ExportTableFunc: func(ctx context.Context) (*model.ExportTableOutput, error) {
				id, _ := logging.CtxRequestID(ctx)
				idCh <- id
				return &model.ExportTableOutput{}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/trigger/export?wait=false", nil)
		req.Header.Set("X-Cloud-Trace-Context", "0123456789abcdef/1;o=1")
		srv.Mux().ServeHTTP(httptest.NewRecorder(), req)

		gt.NoError(t, srv.WaitBackground(context.Background()))
		gt.V(t, <-idCh).Equal(types.RequestID("0123456789abcdef"))
	})
}
