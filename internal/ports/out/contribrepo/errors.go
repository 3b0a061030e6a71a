package contribrepo

import "errors"

var (
	// ErrNotFound indicates the requested contribution does not exist.
	ErrNotFound = errors.New("contribution not found")

	// ErrAlreadyExists indicates a contribution already exists with the provided ID.
	ErrAlreadyExists = errors.New("contribution already exists")
)
