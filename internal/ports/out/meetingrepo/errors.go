package meetingrepo

import "errors"

var (
	// ErrNotFound indicates no meeting matches the query.
	ErrNotFound = errors.New("meeting not found")

	// ErrAlreadyExists indicates a meeting already exists with the provided ID.
	ErrAlreadyExists = errors.New("meeting already exists")
)
