package generation

import "context"

// GeneratedForm is one inflected form produced by a morphological
// generator, before it is attached to a vocabulary item.
type GeneratedForm struct {
	Form     string `json:"form"`
	FormType string `json:"form_type"` // verb_conjugation, noun_plural, adjective_agreement
	Person   string `json:"person,omitempty"`
	Number   string `json:"number,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Tense    string `json:"tense,omitempty"`
	Mood     string `json:"mood,omitempty"`
}

// FormRequest describes the forms wanted for one base word: the word,
// its part of speech, and (for verbs) the tenses the learner's grammar
// knowledge has unlocked.
type FormRequest struct {
	Word   string   `json:"word"`
	POS    string   `json:"pos"` // verb, noun, adjective
	Tenses []string `json:"tenses,omitempty"`
}

// MorphologicalGenerator produces inflected Spanish forms for base
// vocabulary words. Implementations call an external language model;
// the word-form expander treats every failure as recoverable and falls
// back to base forms only.
type MorphologicalGenerator interface {
	// GenerateForms produces the requested forms for a single base word.
	GenerateForms(ctx context.Context, req FormRequest) ([]GeneratedForm, error)

	// GenerateFormsBatch produces forms for several base words in one
	// model call, keyed by base word. Batching is the primary latency
	// mitigation; callers fall back to per-word GenerateForms calls when
	// the batch response cannot be parsed.
	GenerateFormsBatch(ctx context.Context, reqs []FormRequest) (map[string][]GeneratedForm, error)
}

// TranslationProvider translates Spanish text to English.
type TranslationProvider interface {
	Translate(ctx context.Context, text string) (string, error)
}

// PronunciationScorer reports the learner's pronunciation accuracy as a
// percentage in [0, 100], aggregated over recent speaking practice.
type PronunciationScorer interface {
	Accuracy(ctx context.Context) (float64, error)
}
