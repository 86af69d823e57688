package errutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
)

// HandleError logs the error. Errors other than 4xx answers of GitHub API are
// also sent to Sentry with their goerr values.
func HandleError(ctx context.Context, msg string, err error) {
	var upstreamErr *model.UpstreamError
	isUpstream := errors.As(err, &upstreamErr)

	// A 4xx from GitHub is caused by the caller input or the quota, not by a bug.
	if isUpstream && upstreamErr.StatusCode >= http.StatusBadRequest && upstreamErr.StatusCode < http.StatusInternalServerError {
		logging.From(ctx).Warn(msg,
			"error", err,
			slog.Int("upstream.status", upstreamErr.StatusCode),
		)
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}

		if isUpstream {
			scope.SetTag("upstream.status", strconv.Itoa(upstreamErr.StatusCode))
			scope.SetExtra("upstream.url", upstreamErr.URL)
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
