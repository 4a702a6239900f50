package srs

import (
	"errors"
	"time"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// Common errors
var (
	ErrNilRecord      = errors.New("progress record cannot be nil")
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
)

// Service defines the interface for SRS scheduling operations.
type Service interface {
	// SubmitReview computes the updated progress record for a recall of
	// the given quality (0-5). The input record is not modified; a new
	// record with updated scheduling state and derived status is
	// returned.
	SubmitReview(
		record *domain.ProgressRecord,
		quality int,
		now time.Time,
	) (*domain.ProgressRecord, error)

	// IsDue reports whether the record is due for review at the given
	// moment under the scheduler's due policy.
	IsDue(record *domain.ProgressRecord, now time.Time) bool
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// SubmitReview implements the Service interface.
func (s *defaultService) SubmitReview(
	record *domain.ProgressRecord,
	quality int,
	now time.Time,
) (*domain.ProgressRecord, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	if quality < 0 || quality > 5 {
		return nil, ErrInvalidQuality
	}

	return nextRecord(record, quality, now, s.params), nil
}

// IsDue implements the Service interface. The start-of-today boundary
// for the daily-exposure clause uses the time zone of now.
func (s *defaultService) IsDue(record *domain.ProgressRecord, now time.Time) bool {
	if record == nil {
		return false
	}

	year, month, day := now.Date()
	startOfToday := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	return record.IsDue(now, startOfToday)
}
