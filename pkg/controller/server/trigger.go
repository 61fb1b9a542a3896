package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/utils/errutil"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Storage object resources are a few KB; anything larger is not an event.
const maxEventBodySize = 1 << 20

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, types.ErrInvalidEvent) || errors.Is(err, types.ErrValidationFailed) {
		code = http.StatusBadRequest
	} else if errors.Is(err, types.ErrAssetNotFound) || errors.Is(err, types.ErrTaskNotFound) {
		code = http.StatusNotFound
	}

	errutil.HandleError(r.Context(), msg, err)
	writeJSON(w, code, errorResponse{Status: "error", Message: err.Error()})
}

// handleExportTrigger runs the table export. The body of the tick (Cloud
// Scheduler or Pub/Sub push) carries nothing we need and is ignored. The
// response is returned after the extract job finishes, unless wait=false is
// given, in which case the export continues in background.
func (x *Server) handleExportTrigger(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("wait") == "false" {
		bgCtx := DetachContext(r.Context())
		x.bg.Add(1)
		go func() {
			defer x.bg.Done()
			runExportTable(bgCtx, uc)
		}()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
		return
	}

	out, err := uc.ExportTable(r.Context())
	if err != nil {
		writeError(w, r, "fail to export table", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"import_date": out.ImportDate,
		"destination": out.DestinationURI,
		"job_id":      out.JobID,
	})
}

// runExportTable executes the export in the provided context.
// This function is designed to be called from a background goroutine.
func runExportTable(ctx context.Context, uc interfaces.UseCase) {
	logger := logging.From(ctx)
	logger.Info("Starting background table export")

	if out, err := uc.ExportTable(ctx); err != nil {
		errutil.HandleError(ctx, "Background export failed", err)
	} else {
		logger.Info("Background table export completed", slog.String("destination", out.DestinationURI))
	}
}

func handleIngestTrigger(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBodySize))
	if err != nil {
		writeError(w, r, "fail to read event body", goerr.Wrap(err, "failed to read body"))
		return
	}

	ev, err := model.DecodeStorageObjectEvent(body)
	if err == nil {
		err = model.ValidateCloudEventType(r.Header.Get("ce-type"))
	}
	if errors.Is(err, types.ErrIgnoredEvent) {
		// 2xx so that the push subscription does not redeliver it.
		logging.From(r.Context()).Info("Ignored storage event", slog.Any("error", err))
		writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}
	if err != nil {
		writeError(w, r, "fail to decode storage event", err)
		return
	}

	logging.From(r.Context()).Info("Received storage event",
		slog.Any("bucket", ev.Bucket),
		slog.Any("name", ev.Name),
		slog.String("content_type", ev.ContentType),
		slog.String("size", ev.Size),
	)

	out, err := uc.IngestObject(r.Context(), ev)
	if err != nil {
		writeError(w, r, "fail to submit ingestion", err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"status":    "accepted",
		"task_id":   out.TaskID,
		"asset":     out.AssetName,
		"source":    out.SourceURI,
		"operation": out.Operation,
	})
}

func handleIngestionStatus(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	status, err := uc.GetIngestionStatus(r.Context(), taskID)
	if err != nil {
		writeError(w, r, "fail to get ingestion status", err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func handleLatestAsset(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	asset, err := uc.LatestAsset(r.Context())
	if err != nil {
		writeError(w, r, "fail to find latest asset", err)
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

func handleHistory(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	var limit int
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, "invalid history limit", goerr.Wrap(types.ErrValidationFailed, "limit must be a non-negative integer", goerr.V("limit", v)))
			return
		}
		limit = n
	}

	history, err := uc.ListHistory(r.Context(), limit)
	if err != nil {
		writeError(w, r, "fail to list history", err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}
