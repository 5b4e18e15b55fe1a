package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotDirectory indicates the input path is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNoValidPlugins indicates no descriptor in the input directory
	// passed schema validation. A build cannot produce an empty catalogue.
	ErrNoValidPlugins = errors.New("no valid plugin descriptors found")
)
