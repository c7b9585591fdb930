package db

import "errors"

// Domain-level database error sentinels.
var (
	// Extraction errors
	ErrExtractionNotFound = errors.New("extraction not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)
