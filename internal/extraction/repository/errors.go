package repository

import "errors"

var (
	// ErrNotFound means no result exists under the requested id for the scope.
	ErrNotFound = errors.New("result not found")
)
