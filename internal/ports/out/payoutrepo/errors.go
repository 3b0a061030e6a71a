package payoutrepo

import "errors"

var (
	// ErrNotFound indicates no payout matches the query.
	ErrNotFound = errors.New("payout not found")

	// ErrAlreadyExists indicates a payout already exists with the provided ID.
	ErrAlreadyExists = errors.New("payout already exists")
)
