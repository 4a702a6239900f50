package wordforms

import (
	"context"
	"fmt"
	"strings"

	"github.com/hablaconmigo/habla-api/internal/store"
)

// tenseUnlocks maps substrings of grammar topic titles to the verb
// tense they unlock. Titles are matched case-insensitively in either
// English or Spanish.
var tenseUnlocks = []struct {
	tense    string
	keywords []string
}{
	{"preterite", []string{"preterite", "pretérito"}},
	{"imperfect", []string{"imperfect", "imperfecto"}},
	{"future", []string{"future", "futuro"}},
	{"conditional", []string{"conditional", "condicional"}},
}

// unlockedTenses derives the verb tenses to generate from the learner's
// grammar progress. Present tense is the A1 baseline and is always
// included; the rest require a learned or mastered topic whose title
// names the tense.
func unlockedTenses(ctx context.Context, grammarStore store.GrammarStore) ([]string, error) {
	topics, err := grammarStore.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grammar topics: %w", err)
	}

	progress, err := grammarStore.ListProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grammar progress: %w", err)
	}

	var unlockedTitles []string
	for _, topic := range topics {
		if progress[topic.ID].Unlocked() {
			unlockedTitles = append(unlockedTitles, strings.ToLower(topic.Title))
		}
	}

	tenses := []string{"present"}
	for _, unlock := range tenseUnlocks {
		for _, title := range unlockedTitles {
			if containsAny(title, unlock.keywords) {
				tenses = append(tenses, unlock.tense)
				break
			}
		}
	}

	return tenses, nil
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// guessPOS classifies a lemma by its ending. Infinitive endings mark
// verbs, a trailing -o marks an adjective, everything else counts as a
// noun. Crude, but lemmas are dictionary base forms so the infinitive
// check is reliable; the adjective/noun split only affects which form
// types get requested.
func guessPOS(lemma string) string {
	switch {
	case strings.HasSuffix(lemma, "ar") || strings.HasSuffix(lemma, "er") || strings.HasSuffix(lemma, "ir"):
		return "verb"
	case strings.HasSuffix(lemma, "o"):
		return "adjective"
	default:
		return "noun"
	}
}
