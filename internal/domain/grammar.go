package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GrammarStatus is the learner's mastery state for one grammar topic.
type GrammarStatus string

// Possible grammar mastery states
const (
	GrammarStatusNew      GrammarStatus = "new"
	GrammarStatusLearning GrammarStatus = "learning"
	GrammarStatusLearned  GrammarStatus = "learned"
	GrammarStatusMastered GrammarStatus = "mastered"
)

// IsValid reports whether the status is one of the defined values.
func (s GrammarStatus) IsValid() bool {
	switch s {
	case GrammarStatusNew, GrammarStatusLearning, GrammarStatusLearned, GrammarStatusMastered:
		return true
	default:
		return false
	}
}

// Unlocked reports whether the topic counts as usable knowledge for
// word-form generation. Only learned or mastered topics unlock forms.
func (s GrammarStatus) Unlocked() bool {
	return s == GrammarStatusLearned || s == GrammarStatusMastered
}

// Grammar-specific validation errors
var (
	ErrGrammarTopicIDEmpty    = errors.New("grammar topic ID cannot be empty")
	ErrGrammarTopicTitleEmpty = errors.New("grammar topic title cannot be empty")
	ErrGrammarStatusInvalid   = errors.New("invalid grammar status")
)

// GrammarTopic is one entry in the grammar taxonomy (e.g. "Preterite
// Tense", "Adjective Agreement") pinned to a CEFR band. Topics feed the
// word-form expander (which tenses to generate) and the CEFR scorer.
type GrammarTopic struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CEFRLevel CEFRLevel `json:"cefr_level"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGrammarTopic creates a taxonomy entry for the given title and band.
func NewGrammarTopic(title string, level CEFRLevel) (*GrammarTopic, error) {
	topic := &GrammarTopic{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		CEFRLevel: level,
		CreatedAt: time.Now().UTC(),
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	return topic, nil
}

// Validate checks if the GrammarTopic has valid data.
func (t *GrammarTopic) Validate() error {
	if t.ID == uuid.Nil {
		return ErrGrammarTopicIDEmpty
	}

	if t.Title == "" {
		return ErrGrammarTopicTitleEmpty
	}

	if !t.CEFRLevel.IsValid() {
		return ErrVocabularyLevelInvalid
	}

	return nil
}

// GrammarProgress records the learner's mastery status per topic
// (1:1 with GrammarTopic once the topic has been touched).
type GrammarProgress struct {
	TopicID   uuid.UUID     `json:"topic_id"`
	Status    GrammarStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks if the GrammarProgress has valid data.
func (p *GrammarProgress) Validate() error {
	if p.TopicID == uuid.Nil {
		return ErrGrammarTopicIDEmpty
	}

	if !p.Status.IsValid() {
		return ErrGrammarStatusInvalid
	}

	return nil
}
