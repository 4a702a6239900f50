package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyText is returned when required text input is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidQuality is returned when a review quality is outside 0-5.
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")

	// ErrInconsistentState is returned when a vocabulary item exists
	// without its progress record. Progress records are created together
	// with their items, so hitting this indicates a construction bug and
	// is treated as fatal by callers.
	ErrInconsistentState = errors.New("vocabulary item has no progress record")
)
