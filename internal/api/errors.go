package api

import (
	"errors"
	"net/http"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/service/content"
	"github.com/hablaconmigo/habla-api/internal/service/grammar"
	"github.com/hablaconmigo/habla-api/internal/service/review"
	"github.com/hablaconmigo/habla-api/internal/service/vocabulary"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes
// without leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, vocabulary.ErrItemNotFound),
		errors.Is(err, grammar.ErrTopicNotFound),
		errors.Is(err, content.ErrPackageNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, vocabulary.ErrDuplicateLemma),
		errors.Is(err, grammar.ErrDuplicateTopic),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, review.ErrInvalidQuality),
		errors.Is(err, vocabulary.ErrEmptyWord),
		errors.Is(err, vocabulary.ErrInvalidStatus),
		errors.Is(err, grammar.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for
// the error. Internal details stay in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, vocabulary.ErrItemNotFound):
		return "Vocabulary item not found"
	case errors.Is(err, grammar.ErrTopicNotFound):
		return "Grammar topic not found"
	case errors.Is(err, content.ErrPackageNotFound):
		return "Content package not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, vocabulary.ErrDuplicateLemma):
		return "Word is already in your vocabulary"
	case errors.Is(err, grammar.ErrDuplicateTopic):
		return "Grammar topic already exists"
	case errors.Is(err, review.ErrInvalidQuality):
		return "Quality must be between 0 and 5"
	case errors.Is(err, vocabulary.ErrEmptyWord):
		return "Word cannot be empty"
	case errors.Is(err, vocabulary.ErrInvalidStatus):
		return "Unknown progress status"
	case errors.Is(err, grammar.ErrInvalidStatus):
		return "Unknown grammar status"
	case errors.Is(err, domain.ErrEmptyText):
		return "Text cannot be empty"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	default:
		return "An internal error occurred"
	}
}
