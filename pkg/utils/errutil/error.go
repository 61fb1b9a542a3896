package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/bq2ee/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports err to Sentry and logs it. Used where an error must not
// stop the flow or cannot be returned to a caller.
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	reqID, _ := logging.CtxRequestID(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", reqID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
