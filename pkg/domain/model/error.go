package model

import (
	"fmt"
	"net/http"
)

// UpstreamError is raised when GitHub API answers with a non-2xx status code.
type UpstreamError struct {
	StatusCode int
	Method     string
	URL        string
}

func (x *UpstreamError) Error() string {
	return fmt.Sprintf("GitHub API returned %d %s: %s %s",
		x.StatusCode, http.StatusText(x.StatusCode), x.Method, x.URL)
}

func (x *UpstreamError) IsNotFound() bool {
	return x.StatusCode == http.StatusNotFound
}
