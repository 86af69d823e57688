package model

// Repository represents a non-fork GitHub repository with its resolved branches
type Repository struct {
	Name       string    `json:"name"`
	OwnerLogin string    `json:"ownerLogin"`
	Branches   []*Branch `json:"branches"`
}

// NewRepository builds a Repository from a raw record and its resolved branch list.
// Branches is never nil so that an empty list is encoded as [].
func NewRepository(raw *GitHubRawRepository, branches []*Branch) *Repository {
	if branches == nil {
		branches = []*Branch{}
	}
	return &Repository{
		Name:       raw.Name,
		OwnerLogin: raw.OwnerLogin,
		Branches:   branches,
	}
}

// GitHubRawRepository is the subset of a GitHub repository listing entry needed to
// assemble a Repository.
type GitHubRawRepository struct {
	Name       string
	OwnerLogin string
	Fork       bool
}
