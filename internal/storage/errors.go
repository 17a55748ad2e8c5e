package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

// ErrIntegrity is returned when an identifier matches more than one record.
var ErrIntegrity = errors.New("data integrity violation")
