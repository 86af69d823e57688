package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUserNotFound is returned when the repository listing of a user answers 404.
	ErrUserNotFound = goerr.New("user not found")
)
