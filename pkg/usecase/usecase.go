package usecase

import (
	"github.com/secmon-lab/reposcope/pkg/domain/interfaces"
	"github.com/secmon-lab/reposcope/pkg/infra"
)

const (
	// DefaultMaxPages bounds the number of repository listing pages fetched for one user.
	DefaultMaxPages = 500

	// DefaultBranchConcurrency is the number of branch listings sent in parallel.
	DefaultBranchConcurrency = 16
)

type UseCase struct {
	clients *infra.Clients

	maxPages          int
	branchConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithMaxPages overrides DefaultMaxPages. Non-positive values are ignored.
func WithMaxPages(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.maxPages = n
		}
	}
}

// WithBranchConcurrency overrides DefaultBranchConcurrency. Non-positive values are ignored.
func WithBranchConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.branchConcurrency = n
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:           clients,
		maxPages:          DefaultMaxPages,
		branchConcurrency: DefaultBranchConcurrency,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
