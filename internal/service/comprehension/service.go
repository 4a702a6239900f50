package comprehension

import (
	"context"
	"time"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// WordDetail describes one new word found in analyzed text, enriched
// with frequency and CEFR metadata for prioritizing what to learn.
type WordDetail struct {
	Lemma            string           `json:"lemma"`
	Translation      string           `json:"translation,omitempty"`
	FrequencyRank    int              `json:"frequency_rank"`
	CEFRLevel        domain.CEFRLevel `json:"cefr_level"`
	FrequencyTier    string           `json:"frequency_tier"`
	Occurrences      int              `json:"occurrences"`
	ContextSentences []string         `json:"context_sentences,omitempty"`
	OriginalForms    []string         `json:"original_forms"`
}

// Analysis is the full comprehension report for one text.
type Analysis struct {
	TotalWords       int          `json:"total_words"`
	UniqueWords      int          `json:"unique_words"`
	KnownCount       int          `json:"known_count"`
	LearningCount    int          `json:"learning_count"`
	NewCount         int          `json:"new_count"`
	WordFormsMatched int          `json:"word_forms_matched"`
	ComprehensionPct float64      `json:"comprehension_pct"`
	Difficulty       string       `json:"difficulty"`
	ReadyToConsume   bool         `json:"ready_to_consume"`
	NewWords         []WordDetail `json:"new_words"`
	HighValueCount   int          `json:"high_value_count"`
	Recommendation   string       `json:"recommendation"`
	AnalyzedAt       time.Time    `json:"analyzed_at"`
}

// Service analyzes text comprehension.
type Service interface {
	// Analyze tokenizes the text, partitions its vocabulary against the
	// learner's progress, and reports comprehension with per-word detail
	// for everything new. Returns domain.ErrEmptyText for blank input.
	Analyze(ctx context.Context, text string) (*Analysis, error)
}
