package wordforms

import (
	"context"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// RegenerateResult summarizes one expansion run.
type RegenerateResult struct {
	// WordsProcessed is the number of base vocabulary items covered.
	WordsProcessed int `json:"words_processed"`

	// FormsGenerated is the number of forms newly inserted into the
	// cache. Re-running without force over an unchanged vocabulary
	// inserts nothing.
	FormsGenerated int `json:"forms_generated"`

	// Multiplier is the total cached form count divided by the number
	// of words processed: how many recognizable surface forms each base
	// word contributes on average.
	Multiplier float64 `json:"multiplier"`
}

// Service expands vocabulary items into cached word forms.
type Service interface {
	// Regenerate expands every vocabulary item the learner has started
	// studying; items without review history are skipped. With force,
	// previously generated (unverified) forms are wiped first; without
	// it, cached combinations are left alone and only missing forms are
	// inserted.
	Regenerate(ctx context.Context, force bool) (*RegenerateResult, error)

	// FormsForWord returns the cached forms for one base word.
	FormsForWord(ctx context.Context, baseWordID uuid.UUID) ([]*domain.WordForm, error)
}
