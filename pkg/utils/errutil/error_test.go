package errutil_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/utils/errutil"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
)

// handleAndCapture runs HandleError with a JSON logger and returns the log record.
func handleAndCapture(t *testing.T, err error) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	errutil.HandleError(ctx, "test message", err)

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		record := handleAndCapture(t, errors.New("test error"))
		gt.V(t, record["level"]).Equal("ERROR")
		gt.V(t, record["msg"]).Equal("test message")

		_, reported := record["sentry.EventID"]
		gt.True(t, reported)
	})

	t.Run("upstream 5xx is reported", func(t *testing.T) {
		err := goerr.Wrap(&model.UpstreamError{StatusCode: http.StatusBadGateway, Method: "GET", URL: "https://api.github.com/users/x/repos?page=1"},
			"failed to list user repositories", goerr.V("username", "x"))

		record := handleAndCapture(t, err)
		gt.V(t, record["level"]).Equal("ERROR")

		_, reported := record["sentry.EventID"]
		gt.True(t, reported)
	})

	t.Run("upstream 4xx is logged as warning and not reported", func(t *testing.T) {
		for _, code := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests} {
			t.Run(http.StatusText(code), func(t *testing.T) {
				err := goerr.Wrap(&model.UpstreamError{StatusCode: code, Method: "GET", URL: "https://api.github.com/repos/x/gone/branches"},
					"failed to resolve branches", goerr.V("repo", "gone"))

				record := handleAndCapture(t, err)
				gt.V(t, record["level"]).Equal("WARN")
				gt.V(t, record["upstream.status"]).Equal(float64(code))

				_, reported := record["sentry.EventID"]
				gt.False(t, reported)
			})
		}
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}
