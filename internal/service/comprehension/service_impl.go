package comprehension

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// highValueRankCeiling marks new words common enough to prioritize.
const highValueRankCeiling = 1500

// serviceImpl implements the Service interface.
type serviceImpl struct {
	vocabStore    store.VocabularyStore
	progressStore store.ProgressStore
	wordFormStore store.WordFormStore
	lemmatizer    *language.Lemmatizer
	index         language.Index
	logger        *slog.Logger
}

// NewService creates a new comprehension Service implementation.
func NewService(
	vocabStore store.VocabularyStore,
	progressStore store.ProgressStore,
	wordFormStore store.WordFormStore,
	lemmatizer *language.Lemmatizer,
	index language.Index,
	log *slog.Logger,
) Service {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if wordFormStore == nil {
		panic("wordFormStore cannot be nil")
	}
	if lemmatizer == nil {
		panic("lemmatizer cannot be nil")
	}
	if index == nil {
		panic("index cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		vocabStore:    vocabStore,
		progressStore: progressStore,
		wordFormStore: wordFormStore,
		lemmatizer:    lemmatizer,
		index:         index,
		logger:        log.With(slog.String("component", "comprehension_service")),
	}
}

// learnerVocabulary is the learner state the analyzer partitions
// against, loaded once per analysis.
type learnerVocabulary struct {
	allLemmas      map[string]struct{}
	learnedLemmas  map[string]struct{}
	learningLemmas map[string]struct{}
	formStrings    map[string]uuid.UUID
}

// Analyze implements Service.Analyze.
func (s *serviceImpl) Analyze(ctx context.Context, text string) (*Analysis, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}

	tokens := language.Tokenize(text)
	vocab, err := s.loadVocabulary(ctx)
	if err != nil {
		return nil, err
	}

	lemmaOf := make(map[string]string, len(tokens))
	occurrences := make(map[string]int)
	lemmaToForms := make(map[string]map[string]struct{})
	uniqueTokens := make(map[string]struct{})
	stopLemmas := make(map[string]struct{})
	uniqueLemmas := make(map[string]struct{})

	for _, token := range tokens {
		uniqueTokens[token] = struct{}{}
		lemma, ok := lemmaOf[token]
		if !ok {
			lemma = s.lemmatizer.Lemmatize(token)
			lemmaOf[token] = lemma
		}
		occurrences[lemma]++
		if lemmaToForms[lemma] == nil {
			lemmaToForms[lemma] = make(map[string]struct{})
		}
		lemmaToForms[lemma][token] = struct{}{}

		if language.IsStopWord(lemma) {
			stopLemmas[lemma] = struct{}{}
			continue
		}
		uniqueLemmas[lemma] = struct{}{}
	}

	known := make(map[string]struct{})
	learning := make(map[string]struct{})
	newLemmas := make(map[string]struct{})
	for lemma := range uniqueLemmas {
		if _, ok := vocab.learnedLemmas[lemma]; ok {
			known[lemma] = struct{}{}
		}
		if _, ok := vocab.learningLemmas[lemma]; ok {
			learning[lemma] = struct{}{}
		}
		if _, inVocab := vocab.allLemmas[lemma]; !inVocab && len([]rune(lemma)) > 2 {
			newLemmas[lemma] = struct{}{}
		}
	}

	// Raw tokens matched against the cached form set recover surface
	// forms the lemmatizer reduced away.
	formMatches := make(map[string]struct{})
	for token := range uniqueTokens {
		if _, ok := vocab.formStrings[token]; ok {
			formMatches[token] = struct{}{}
		}
	}

	// Known lemmas and matched surface forms live in different
	// namespaces; the union counts each recognizable unit once.
	comprehensibleSet := make(map[string]struct{}, len(known)+len(formMatches))
	for lemma := range known {
		comprehensibleSet[lemma] = struct{}{}
	}
	for form := range formMatches {
		comprehensibleSet[form] = struct{}{}
	}

	pct := 100.0
	if len(uniqueLemmas) > 0 {
		numerator := float64(len(comprehensibleSet) + len(learning) + len(stopLemmas))
		denominator := float64(len(uniqueLemmas) + len(stopLemmas))
		pct = numerator / denominator * 100
	}
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	details := s.describeNewWords(text, newLemmas, occurrences, lemmaToForms)

	highValue := 0
	for _, d := range details {
		if d.FrequencyRank <= highValueRankCeiling {
			highValue++
		}
	}

	analysis := &Analysis{
		TotalWords:       len(tokens),
		UniqueWords:      len(uniqueLemmas),
		KnownCount:       len(known),
		LearningCount:    len(learning),
		NewCount:         len(newLemmas),
		WordFormsMatched: len(formMatches),
		ComprehensionPct: pct,
		Difficulty:       difficultyLabel(pct),
		ReadyToConsume:   pct >= 80,
		NewWords:         details,
		HighValueCount:   highValue,
		Recommendation:   recommendation(pct, len(newLemmas), highValue),
		AnalyzedAt:       time.Now().UTC(),
	}

	log.Debug("analyzed text",
		slog.Int("total_words", analysis.TotalWords),
		slog.Int("unique_words", analysis.UniqueWords),
		slog.Int("new_words", analysis.NewCount),
		slog.Float64("comprehension_pct", analysis.ComprehensionPct))
	return analysis, nil
}

// loadVocabulary snapshots the learner's lemma sets and cached forms.
func (s *serviceImpl) loadVocabulary(ctx context.Context) (*learnerVocabulary, error) {
	total, err := s.vocabStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vocabulary: %w", err)
	}

	vocab := &learnerVocabulary{
		allLemmas:      make(map[string]struct{}, total),
		learnedLemmas:  make(map[string]struct{}),
		learningLemmas: make(map[string]struct{}),
	}

	if total > 0 {
		items, err := s.vocabStore.List(ctx, total, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to list vocabulary: %w", err)
		}

		idToLemma := make(map[uuid.UUID]string, len(items))
		for _, item := range items {
			vocab.allLemmas[item.Lemma] = struct{}{}
			idToLemma[item.ID] = item.Lemma
		}

		for status, target := range map[domain.ProgressStatus]map[string]struct{}{
			domain.ProgressStatusLearned:  vocab.learnedLemmas,
			domain.ProgressStatusLearning: vocab.learningLemmas,
		} {
			records, err := s.progressStore.FindByStatus(ctx, status, total, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to find %s records: %w", status, err)
			}
			for _, record := range records {
				if lemma, ok := idToLemma[record.VocabularyID]; ok {
					target[lemma] = struct{}{}
				}
			}
		}
	}

	vocab.formStrings, err = s.wordFormStore.AllFormStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load word form strings: %w", err)
	}

	return vocab, nil
}

// describeNewWords builds the per-word detail list, sorted by ascending
// frequency rank so the most valuable words come first.
func (s *serviceImpl) describeNewWords(
	text string,
	newLemmas map[string]struct{},
	occurrences map[string]int,
	lemmaToForms map[string]map[string]struct{},
) []WordDetail {
	sentences := language.ExtractSentences(text)

	details := make([]WordDetail, 0, len(newLemmas))
	for lemma := range newLemmas {
		forms := make([]string, 0, len(lemmaToForms[lemma]))
		for form := range lemmaToForms[lemma] {
			forms = append(forms, form)
		}
		sort.Strings(forms)

		// Context matches run on the surface forms observed in the
		// text; the lemma itself may never appear verbatim.
		var contexts []string
		seen := make(map[string]struct{})
		for _, form := range forms {
			for _, sentence := range language.FindWordContext(form, sentences, 3) {
				if _, dup := seen[sentence]; dup {
					continue
				}
				seen[sentence] = struct{}{}
				contexts = append(contexts, sentence)
			}
		}
		if len(contexts) > 3 {
			contexts = contexts[:3]
		}

		translation, _ := s.index.Translation(lemma)
		rank := s.index.Rank(lemma)

		details = append(details, WordDetail{
			Lemma:            lemma,
			Translation:      translation,
			FrequencyRank:    rank,
			CEFRLevel:        s.index.EstimateCEFR(lemma),
			FrequencyTier:    language.FrequencyTier(rank),
			Occurrences:      occurrences[lemma],
			ContextSentences: contexts,
			OriginalForms:    forms,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].FrequencyRank != details[j].FrequencyRank {
			return details[i].FrequencyRank < details[j].FrequencyRank
		}
		return details[i].Lemma < details[j].Lemma
	})
	return details
}

func difficultyLabel(pct float64) string {
	switch {
	case pct >= 95:
		return "Very Easy"
	case pct >= 85:
		return "Easy"
	case pct >= 70:
		return "Moderate"
	case pct >= 50:
		return "Challenging"
	default:
		return "Difficult"
	}
}

func recommendation(pct float64, newCount, highValue int) string {
	switch {
	case pct >= 95:
		return "Perfect for your level! You know almost all the vocabulary."
	case pct >= 85:
		return fmt.Sprintf("Great match! Learn %d new words to fully understand this content.", newCount)
	case pct >= 70:
		return fmt.Sprintf("Moderate challenge. Consider learning the %d high-frequency words first.", highValue)
	case pct >= 50:
		return fmt.Sprintf("Challenging content. Focus on the %d most common new words to improve comprehension.", highValue)
	default:
		return fmt.Sprintf("This content may be too advanced. Consider easier material or learn %d essential words first.", highValue)
	}
}
