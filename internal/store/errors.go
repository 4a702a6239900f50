package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a vocabulary item with the same lemma).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUpdateFailed is returned when an update operation fails, for example
	// because the entity does not exist or the update violates constraints.
	ErrUpdateFailed = errors.New("update failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrVocabularyNotFound indicates that the requested vocabulary item
	// does not exist in the store.
	ErrVocabularyNotFound = fmt.Errorf("%w: vocabulary item", ErrNotFound)

	// ErrProgressNotFound indicates that the requested progress record
	// does not exist in the store. A vocabulary item without a progress
	// record signals a construction bug; see domain.ErrInconsistentState.
	ErrProgressNotFound = fmt.Errorf("%w: progress record", ErrNotFound)

	// ErrWordFormNotFound indicates that the requested word form does not
	// exist in the store.
	ErrWordFormNotFound = fmt.Errorf("%w: word form", ErrNotFound)

	// ErrGrammarTopicNotFound indicates that the requested grammar topic
	// does not exist in the store.
	ErrGrammarTopicNotFound = fmt.Errorf("%w: grammar topic", ErrNotFound)

	// ErrContentPackageNotFound indicates that the requested content
	// package does not exist in the store.
	ErrContentPackageNotFound = fmt.Errorf("%w: content package", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrLemmaExists indicates that a vocabulary item with the given
	// lemma already exists.
	ErrLemmaExists = fmt.Errorf("%w: lemma", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "vocabulary item", "word form")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
