package scoring

import (
	"context"
	"time"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// Dimension weights. Speaking is a pronunciation-accuracy proxy and is
// capped because phonetic accuracy alone cannot prove discourse
// competence.
const (
	WeightVocabulary = 0.30
	WeightGrammar    = 0.35
	WeightSpeaking   = 0.20
	WeightContent    = 0.15

	SpeakingCap = 87.5
)

// VocabularyDimension breaks down the vocabulary score.
type VocabularyDimension struct {
	Score    float64 `json:"score"`
	Learned  int     `json:"learned"`
	Learning int     `json:"learning"`
	New      int     `json:"new"`
	Total    int     `json:"total"`
}

// GrammarDimension breaks down the grammar score.
type GrammarDimension struct {
	Score    float64 `json:"score"`
	Mastered int     `json:"mastered"`
	Learned  int     `json:"learned"`
	Learning int     `json:"learning"`
	New      int     `json:"new"`
	Total    int     `json:"total"`
}

// SpeakingDimension breaks down the speaking score.
type SpeakingDimension struct {
	Score  float64 `json:"score"`
	Capped bool    `json:"capped"`
}

// ContentDimension breaks down the content-readiness score.
type ContentDimension struct {
	Score         float64 `json:"score"`
	ReadyPackages int     `json:"ready_packages"`
	TotalPackages int     `json:"total_packages"`
}

// LevelGate reports the mastery thresholds for one CEFR level and
// whether they unlock the next level's content.
type LevelGate struct {
	Level          domain.CEFRLevel `json:"level"`
	VocabMastery   float64          `json:"vocab_mastery"`
	GrammarMastery float64          `json:"grammar_mastery"`
	NextUnlocked   bool             `json:"next_unlocked"`
}

// UnifiedScore is the complete scoring report.
type UnifiedScore struct {
	Score      float64             `json:"score"`
	Band       domain.CEFRLevel    `json:"band"`
	Sublevel   string              `json:"sublevel"`
	Vocabulary VocabularyDimension `json:"vocabulary"`
	Grammar    GrammarDimension    `json:"grammar"`
	Speaking   SpeakingDimension   `json:"speaking"`
	Content    ContentDimension    `json:"content"`
	Gates      []LevelGate         `json:"gates"`
	ComputedAt time.Time           `json:"computed_at"`
}

// Service computes the unified CEFR score.
type Service interface {
	// UnifiedScore blends the four dimensions into one 0-100 score with
	// band, sub-level, and per-level gating.
	UnifiedScore(ctx context.Context) (*UnifiedScore, error)
}
