package server

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
)

// DetachContext returns a background context carrying the logger, request ID
// and time function of ctx. Used for exports that outlive the trigger request.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	// Inherit logger from the original context
	bgCtx = logging.With(bgCtx, logging.From(ctx))

	// Inherit request ID and time function from the original context
	bgCtx = logging.InheritContextValues(bgCtx, ctx)

	return bgCtx
}
