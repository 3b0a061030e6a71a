package grouprepo

import "errors"

var (
	// ErrNotFound indicates the requested group does not exist.
	ErrNotFound = errors.New("group not found")

	// ErrAlreadyExists indicates a group already exists with the provided ID.
	ErrAlreadyExists = errors.New("group already exists")
)
