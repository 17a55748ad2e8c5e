package services

import "errors"

// Define common service errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict") // e.g., duplicate id
)
