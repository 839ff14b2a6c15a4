package models

import "errors"

// Custom errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrMissingInput     = errors.New("required input data is missing")
	ErrInsufficientData = errors.New("insufficient data for computation")
	ErrDuplicateKey     = errors.New("duplicate key violation")
)
