package model

import "github.com/secmon-lab/reposcope/pkg/domain/types"

// Branch represents a branch of a GitHub repository. LastCommitSHA is nil when
// GitHub does not report a commit SHA for the branch.
type Branch struct {
	Name          string           `json:"name"`
	LastCommitSHA *types.CommitSHA `json:"lastCommitSha"`
}

func NewBranch(name string, sha *types.CommitSHA) *Branch {
	return &Branch{
		Name:          name,
		LastCommitSHA: sha,
	}
}
