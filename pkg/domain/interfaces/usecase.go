package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
)

type UseCase interface {
	GetUserRepositories(ctx context.Context, username types.GitHubUsername) ([]*model.Repository, error)
}
