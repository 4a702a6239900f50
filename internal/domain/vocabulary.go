package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vocabulary-specific validation errors
var (
	// ErrVocabularyIDEmpty is returned when a vocabulary item ID is empty or nil.
	ErrVocabularyIDEmpty = errors.New("vocabulary item ID cannot be empty")

	// ErrVocabularyLemmaEmpty is returned when the Spanish lemma is empty.
	ErrVocabularyLemmaEmpty = errors.New("vocabulary lemma cannot be empty")

	// ErrVocabularyLevelInvalid is returned when the CEFR level is not a valid band.
	ErrVocabularyLevelInvalid = errors.New("vocabulary CEFR level is not a valid band")
)

// VocabularyItem is one entry in the learner's personal vocabulary:
// a Spanish lemma (dictionary base form) with its translation and
// metadata. Items are created on first encounter with a word and are
// rarely mutated afterwards; only translation fix-ups are expected.
type VocabularyItem struct {
	ID              uuid.UUID `json:"id"`
	Lemma           string    `json:"lemma"`
	Translation     string    `json:"translation"`
	Category        string    `json:"category,omitempty"`
	CEFRLevel       CEFRLevel `json:"cefr_level"`
	ExampleSentence string    `json:"example_sentence,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewVocabularyItem creates a new VocabularyItem for the given lemma.
// The lemma is lowercased; accents are preserved. Returns an error if
// validation fails.
func NewVocabularyItem(
	lemma, translation, category string,
	level CEFRLevel,
	exampleSentence string,
) (*VocabularyItem, error) {
	now := time.Now().UTC()
	item := &VocabularyItem{
		ID:              uuid.New(),
		Lemma:           strings.ToLower(strings.TrimSpace(lemma)),
		Translation:     translation,
		Category:        category,
		CEFRLevel:       level,
		ExampleSentence: exampleSentence,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabularyItem has valid data.
// Returns an error if any field fails validation.
func (v *VocabularyItem) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVocabularyIDEmpty
	}

	if strings.TrimSpace(v.Lemma) == "" {
		return ErrVocabularyLemmaEmpty
	}

	if !v.CEFRLevel.IsValid() {
		return ErrVocabularyLevelInvalid
	}

	return nil
}

// UpdateTranslation replaces the item's translation and bumps the
// UpdatedAt timestamp. This is the only expected mutation of an item
// after creation.
func (v *VocabularyItem) UpdateTranslation(translation string) {
	v.Translation = translation
	v.UpdatedAt = time.Now().UTC()
}
