package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WordFormType classifies how an inflected form relates to its base word.
type WordFormType string

// Possible word form types
const (
	WordFormTypeBase        WordFormType = "base"
	WordFormTypeConjugation WordFormType = "verb_conjugation"
	WordFormTypeNounPlural  WordFormType = "noun_plural"
	WordFormTypeAgreement   WordFormType = "adjective_agreement"
)

// IsValid reports whether the form type is one of the defined values.
func (t WordFormType) IsValid() bool {
	switch t {
	case WordFormTypeBase, WordFormTypeConjugation, WordFormTypeNounPlural, WordFormTypeAgreement:
		return true
	default:
		return false
	}
}

// WordForm-specific validation errors
var (
	ErrWordFormBaseIDEmpty     = errors.New("word form base word ID cannot be empty")
	ErrWordFormEmpty           = errors.New("word form string cannot be empty")
	ErrWordFormTypeInvalid     = errors.New("invalid word form type")
	ErrWordFormVerifiedNewForm = errors.New("new word forms cannot start verified")
)

// WordForm is one inflected surface form generated from a base
// vocabulary item: a conjugated verb, a noun plural, or an adjective
// agreement form. Many forms map to one item (N:1). Forms are generated
// on demand and cached until a forced regeneration; Verified stays
// false unless the form is externally confirmed, and generation never
// promotes it.
type WordForm struct {
	ID         uuid.UUID    `json:"id"`
	BaseWordID uuid.UUID    `json:"base_word_id"`
	Form       string       `json:"form"`
	FormType   WordFormType `json:"form_type"`
	Person     string       `json:"person,omitempty"`
	Number     string       `json:"number,omitempty"`
	Gender     string       `json:"gender,omitempty"`
	Tense      string       `json:"tense,omitempty"`
	Mood       string       `json:"mood,omitempty"`
	Verified   bool         `json:"verified"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewWordForm creates an unverified WordForm for the given base word.
// The form string is lowercased and trimmed. Returns an error if
// validation fails.
func NewWordForm(baseWordID uuid.UUID, form string, formType WordFormType) (*WordForm, error) {
	wf := &WordForm{
		ID:         uuid.New(),
		BaseWordID: baseWordID,
		Form:       strings.ToLower(strings.TrimSpace(form)),
		FormType:   formType,
		Verified:   false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := wf.Validate(); err != nil {
		return nil, err
	}

	return wf, nil
}

// Validate checks if the WordForm has valid data.
// Returns an error if any field fails validation.
func (w *WordForm) Validate() error {
	if w.BaseWordID == uuid.Nil {
		return ErrWordFormBaseIDEmpty
	}

	if strings.TrimSpace(w.Form) == "" {
		return ErrWordFormEmpty
	}

	if !w.FormType.IsValid() {
		return ErrWordFormTypeInvalid
	}

	return nil
}
