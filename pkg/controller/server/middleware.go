package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
)

// traceID extracts the trace ID from X-Cloud-Trace-Context
// ("TRACE_ID/SPAN_ID;o=OPTIONS"), which Cloud Run sets on every request.
func traceID(r *http.Request) types.RequestID {
	v := r.Header.Get("X-Cloud-Trace-Context")
	if i := strings.IndexByte(v, '/'); i >= 0 {
		v = v[:i]
	}
	return types.RequestID(v)
}

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.CtxWithRequestID(r.Context(), traceID(r))
		reqID, ctx := logging.CtxRequestID(ctx)
		logger := logging.Default().With(slog.Any("request_id", reqID))
		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
