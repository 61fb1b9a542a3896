package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/bq2ee/pkg/domain/interfaces"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	mux *chi.Mux
	bg  sync.WaitGroup
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

func New(uc interfaces.UseCase) *Server {
	s := &Server{}
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/trigger", func(r chi.Router) {
		r.Post("/export", func(w http.ResponseWriter, r *http.Request) {
			s.handleExportTrigger(uc, w, r)
		})
		r.Post("/ingest", func(w http.ResponseWriter, r *http.Request) {
			handleIngestTrigger(uc, w, r)
		})
	})
	r.Route("/ingestion", func(r chi.Router) {
		r.Get("/latest", func(w http.ResponseWriter, r *http.Request) {
			handleLatestAsset(uc, w, r)
		})
		r.Get("/{taskID}", func(w http.ResponseWriter, r *http.Request) {
			handleIngestionStatus(uc, w, r)
		})
	})

	r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		handleHistory(uc, w, r)
	})

	s.mux = r
	return s
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// WaitBackground blocks until background exports started by the server are
// done or ctx is done. Clients used by the exports must stay open until then.
func (x *Server) WaitBackground(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		x.bg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "background exports are still running")
	}
}
