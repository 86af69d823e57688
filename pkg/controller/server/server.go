package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/reposcope/pkg/domain/interfaces"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response body is JSON encoded or a fixed string
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"status":500,"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/github", func(r chi.Router) {
		r.Get("/user/{username}/repositories", getUserRepositories(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
