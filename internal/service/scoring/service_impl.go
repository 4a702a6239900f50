package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/generation"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// contentReadyThreshold is the known-word fraction above which an
// imported content package counts as consumable.
const contentReadyThreshold = 0.8

// gateThreshold is the mastery percentage both dimensions must reach
// at level N to unlock level N+1.
const gateThreshold = 80.0

// serviceImpl implements the Service interface.
type serviceImpl struct {
	vocabStore    store.VocabularyStore
	progressStore store.ProgressStore
	grammarStore  store.GrammarStore
	contentStore  store.ContentPackageStore
	index         language.Index
	pronunciation generation.PronunciationScorer
	logger        *slog.Logger
}

// NewService creates a new scoring Service implementation.
func NewService(
	vocabStore store.VocabularyStore,
	progressStore store.ProgressStore,
	grammarStore store.GrammarStore,
	contentStore store.ContentPackageStore,
	index language.Index,
	pronunciation generation.PronunciationScorer,
	log *slog.Logger,
) Service {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if grammarStore == nil {
		panic("grammarStore cannot be nil")
	}
	if contentStore == nil {
		panic("contentStore cannot be nil")
	}
	if index == nil {
		panic("index cannot be nil")
	}
	if pronunciation == nil {
		panic("pronunciation cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		vocabStore:    vocabStore,
		progressStore: progressStore,
		grammarStore:  grammarStore,
		contentStore:  contentStore,
		index:         index,
		pronunciation: pronunciation,
		logger:        log.With(slog.String("component", "scoring_service")),
	}
}

// lemmaWeights maps each stored lemma to its knowledge weight:
// 1.0 for learned, 0.5 for learning, absent otherwise.
type lemmaWeights map[string]float64

// UnifiedScore implements Service.UnifiedScore.
func (s *serviceImpl) UnifiedScore(ctx context.Context) (*UnifiedScore, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	weights, err := s.loadLemmaWeights(ctx)
	if err != nil {
		return nil, err
	}

	vocabulary, err := s.vocabularyDimension(ctx, weights)
	if err != nil {
		return nil, err
	}

	grammar, topics, topicStatus, err := s.grammarDimension(ctx)
	if err != nil {
		return nil, err
	}

	speaking := s.speakingDimension(ctx, log)

	content, err := s.contentDimension(ctx, weights)
	if err != nil {
		return nil, err
	}

	overall := clip(vocabulary.Score*WeightVocabulary +
		grammar.Score*WeightGrammar +
		speaking.Score*WeightSpeaking +
		content.Score*WeightContent)

	result := &UnifiedScore{
		Score:      overall,
		Band:       bandFor(overall),
		Sublevel:   sublevelFor(overall),
		Vocabulary: vocabulary,
		Grammar:    grammar,
		Speaking:   speaking,
		Content:    content,
		Gates:      s.gates(weights, topics, topicStatus),
		ComputedAt: time.Now().UTC(),
	}

	log.Debug("computed unified score",
		slog.Float64("score", result.Score),
		slog.String("band", string(result.Band)),
		slog.String("sublevel", result.Sublevel))
	return result, nil
}

// loadLemmaWeights snapshots the learner's vocabulary as lemma weights.
func (s *serviceImpl) loadLemmaWeights(ctx context.Context) (lemmaWeights, error) {
	total, err := s.vocabStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vocabulary: %w", err)
	}

	weights := make(lemmaWeights, total)
	if total == 0 {
		return weights, nil
	}

	items, err := s.vocabStore.List(ctx, total, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}

	idToLemma := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		idToLemma[item.ID] = item.Lemma
	}

	for status, weight := range map[domain.ProgressStatus]float64{
		domain.ProgressStatusLearned:  1.0,
		domain.ProgressStatusLearning: 0.5,
	} {
		records, err := s.progressStore.FindByStatus(ctx, status, total, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s records: %w", status, err)
		}
		for _, record := range records {
			if lemma, ok := idToLemma[record.VocabularyID]; ok {
				weights[lemma] = weight
			}
		}
	}

	return weights, nil
}

// vocabularyDimension scores vocabulary as a ladder over the reference
// vocabulary: full weighted coverage of a level's reference lemmas
// moves the score across that level's band width, so covering A1 and
// A2 completely lands the dimension at the A2/B1 boundary.
func (s *serviceImpl) vocabularyDimension(ctx context.Context, weights lemmaWeights) (VocabularyDimension, error) {
	counts, err := s.progressStore.CountByStatus(ctx)
	if err != nil {
		return VocabularyDimension{}, fmt.Errorf("failed to count progress by status: %w", err)
	}

	dim := VocabularyDimension{
		Learned:  counts[domain.ProgressStatusLearned],
		Learning: counts[domain.ProgressStatusLearning],
		New:      counts[domain.ProgressStatusNew],
	}
	for _, n := range counts {
		dim.Total += n
	}

	score := 0.0
	for _, level := range domain.CEFRLevels {
		coverage := referenceCoverage(s.index, level, weights)
		score += coverage / 100 * bandWidth(level)
	}
	dim.Score = clip(score)
	return dim, nil
}

// referenceCoverage is the weighted percentage of a level's reference
// vocabulary the learner knows. Levels without reference data score 0.
func referenceCoverage(index language.Index, level domain.CEFRLevel, weights lemmaWeights) float64 {
	lemmas := index.ReferenceLemmas(level)
	if len(lemmas) == 0 {
		return 0
	}

	covered := 0.0
	for _, lemma := range lemmas {
		covered += weights[lemma]
	}
	return clip(covered / float64(len(lemmas)) * 100)
}

// grammarDimension scores the topic taxonomy with mastered=1.0,
// learned=0.75, learning=0.5.
func (s *serviceImpl) grammarDimension(ctx context.Context) (GrammarDimension, []*domain.GrammarTopic, map[uuid.UUID]domain.GrammarStatus, error) {
	topics, err := s.grammarStore.ListTopics(ctx)
	if err != nil {
		return GrammarDimension{}, nil, nil, fmt.Errorf("failed to list grammar topics: %w", err)
	}

	progress, err := s.grammarStore.ListProgress(ctx)
	if err != nil {
		return GrammarDimension{}, nil, nil, fmt.Errorf("failed to list grammar progress: %w", err)
	}

	dim := GrammarDimension{Total: len(topics)}
	weighted := 0.0
	for _, topic := range topics {
		switch progress[topic.ID] {
		case domain.GrammarStatusMastered:
			dim.Mastered++
			weighted += 1.0
		case domain.GrammarStatusLearned:
			dim.Learned++
			weighted += 0.75
		case domain.GrammarStatusLearning:
			dim.Learning++
			weighted += 0.5
		default:
			dim.New++
		}
	}

	if dim.Total > 0 {
		dim.Score = clip(weighted / float64(dim.Total) * 100)
	}
	return dim, topics, progress, nil
}

// speakingDimension reads the pronunciation proxy. Failures score zero;
// missing speaking evidence should depress the blend, not break it.
func (s *serviceImpl) speakingDimension(ctx context.Context, log *slog.Logger) SpeakingDimension {
	accuracy, err := s.pronunciation.Accuracy(ctx)
	if err != nil {
		log.Warn("failed to read pronunciation accuracy, scoring speaking as zero",
			slog.String("error", err.Error()))
		return SpeakingDimension{}
	}

	dim := SpeakingDimension{Score: clip(accuracy)}
	if dim.Score > SpeakingCap {
		dim.Score = SpeakingCap
		dim.Capped = true
	}
	return dim
}

// contentDimension scores the fraction of imported packages whose word
// lists the learner mostly knows.
func (s *serviceImpl) contentDimension(ctx context.Context, weights lemmaWeights) (ContentDimension, error) {
	packages, err := s.contentStore.List(ctx)
	if err != nil {
		return ContentDimension{}, fmt.Errorf("failed to list content packages: %w", err)
	}

	dim := ContentDimension{TotalPackages: len(packages)}
	for _, pkg := range packages {
		if len(pkg.Words) == 0 {
			continue
		}
		known := 0
		for _, word := range pkg.Words {
			if weights[word] > 0 {
				known++
			}
		}
		if float64(known)/float64(len(pkg.Words)) >= contentReadyThreshold {
			dim.ReadyPackages++
		}
	}

	if dim.TotalPackages > 0 {
		dim.Score = float64(dim.ReadyPackages) / float64(dim.TotalPackages) * 100
	}
	return dim, nil
}

// gates computes the per-level unlock thresholds. C2 has no next level
// and carries no gate.
func (s *serviceImpl) gates(
	weights lemmaWeights,
	topics []*domain.GrammarTopic,
	topicStatus map[uuid.UUID]domain.GrammarStatus,
) []LevelGate {
	topicsByLevel := make(map[domain.CEFRLevel][]*domain.GrammarTopic)
	for _, topic := range topics {
		topicsByLevel[topic.CEFRLevel] = append(topicsByLevel[topic.CEFRLevel], topic)
	}

	gates := make([]LevelGate, 0, len(domain.CEFRLevels)-1)
	for _, level := range domain.CEFRLevels {
		if level == domain.CEFRLevelC2 {
			break
		}

		gate := LevelGate{
			Level:        level,
			VocabMastery: referenceCoverage(s.index, level, weights),
		}

		levelTopics := topicsByLevel[level]
		if len(levelTopics) > 0 {
			weighted := 0.0
			for _, topic := range levelTopics {
				switch topicStatus[topic.ID] {
				case domain.GrammarStatusMastered:
					weighted += 1.0
				case domain.GrammarStatusLearned:
					weighted += 0.75
				case domain.GrammarStatusLearning:
					weighted += 0.5
				}
			}
			gate.GrammarMastery = clip(weighted / float64(len(levelTopics)) * 100)
		}

		gate.NextUnlocked = gate.VocabMastery >= gateThreshold && gate.GrammarMastery >= gateThreshold
		gates = append(gates, gate)
	}

	return gates
}
