package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// GitHubServer is a fake GitHub REST API answering fixed JSON bodies.
type GitHubServer struct {
	*httptest.Server
	requests atomic.Int64
}

// Requests returns number of requests the server received.
func (x *GitHubServer) Requests() int {
	return int(x.requests.Load())
}

// NewGitHubServer starts a fake GitHub API. A key of bodies is a request path,
// optionally followed by "?page=N". Requests matching no key answer 404 with the
// same body as GitHub. The server is closed when the test finishes.
func NewGitHubServer(t *testing.T, bodies map[string]string) *GitHubServer {
	t.Helper()

	srv := &GitHubServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.requests.Add(1)

		key := r.URL.Path
		if page := r.URL.Query().Get("page"); page != "" {
			key += "?page=" + page
		}

		body, ok := bodies[key]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}
