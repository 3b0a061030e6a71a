package userrepo

import "errors"

var (
	// ErrNotFound indicates no user is bound to the phone identity.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists indicates a user already exists with the provided ID or phone.
	ErrAlreadyExists = errors.New("user already exists")
)
