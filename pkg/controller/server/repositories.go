package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/reposcope/pkg/domain/interfaces"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
	"github.com/secmon-lab/reposcope/pkg/utils/errutil"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func getUserRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := types.GitHubUsername(chi.URLParam(r, "username"))

		repos, err := uc.GetUserRepositories(ctx, username)
		if err != nil {
			writeUseCaseError(w, r, username, err)
			return
		}

		if repos == nil {
			repos = []*model.Repository{}
		}
		writeJSON(w, http.StatusOK, repos)
	}
}

func writeUseCaseError(w http.ResponseWriter, r *http.Request, username types.GitHubUsername, err error) {
	ctx := r.Context()

	if errors.Is(err, types.ErrUserNotFound) {
		logging.From(ctx).Info("GitHub user not found", slog.String("username", username.String()))
		writeJSON(w, http.StatusNotFound, errorResponse{
			Status:  http.StatusNotFound,
			Message: fmt.Sprintf("User not found: %s", username),
		})
		return
	}

	errutil.HandleError(ctx, "fail to get user repositories", err)

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		code := upstreamErr.StatusCode
		// 3xx can not be relayed with a body
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		writeJSON(w, code, errorResponse{
			Status:  code,
			Message: fmt.Sprintf("GitHub API error: %d %s", upstreamErr.StatusCode, http.StatusText(upstreamErr.StatusCode)),
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
