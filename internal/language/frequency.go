package language

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// UnknownRank is the sentinel returned for lemmas absent from the
// frequency index. It sorts after every real rank.
const UnknownRank = 99999

// Entry is one row of the frequency index.
type Entry struct {
	Rank        int
	Lemma       string
	POS         string // verb, noun, adj, adv, ...
	Translation string
	Level       domain.CEFRLevel
}

// Index is the static frequency/CEFR lookup consumed by the lemmatizer,
// the comprehension analyzer, and the CEFR scorer. Implementations hold
// immutable data; there is no mutation surface.
type Index interface {
	// Rank returns the frequency rank of the lemma (1 = most common),
	// or UnknownRank if the lemma is not in the index.
	Rank(lemma string) int

	// Translation returns the English translation of the lemma, if known.
	Translation(lemma string) (string, bool)

	// EstimateCEFR estimates the CEFR band of the lemma from its rank.
	EstimateCEFR(lemma string) domain.CEFRLevel

	// ReferenceLemmas returns the reference vocabulary pinned to
	// exactly the given level. Used by the scorer's gating math.
	ReferenceLemmas(level domain.CEFRLevel) []string

	// Lookup returns the full entry for a lemma, if present.
	Lookup(lemma string) (Entry, bool)
}

// StaticIndex is an in-memory Index built from a fixed entry list.
type StaticIndex struct {
	byLemma map[string]Entry
	byLevel map[domain.CEFRLevel][]string
}

// Ensure StaticIndex implements the Index interface
var _ Index = (*StaticIndex)(nil)

// NewStaticIndex builds an index from the given entries.
func NewStaticIndex(entries []Entry) *StaticIndex {
	idx := &StaticIndex{
		byLemma: make(map[string]Entry, len(entries)),
		byLevel: make(map[domain.CEFRLevel][]string),
	}

	for _, e := range entries {
		e.Lemma = strings.ToLower(e.Lemma)
		idx.byLemma[e.Lemma] = e
		idx.byLevel[e.Level] = append(idx.byLevel[e.Level], e.Lemma)
	}

	return idx
}

//go:embed data/lexicon.csv
var lexiconCSV string

// NewEmbeddedIndex builds the index from the bundled seed lexicon
// (rank, lemma, pos, translation, level per row).
func NewEmbeddedIndex() (*StaticIndex, error) {
	reader := csv.NewReader(strings.NewReader(lexiconCSV))
	reader.FieldsPerRecord = 5

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded lexicon: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == "rank" {
			continue // header
		}

		rank, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("bad rank %q on lexicon row %d: %w", row[0], i+1, err)
		}

		entries = append(entries, Entry{
			Rank:        rank,
			Lemma:       strings.TrimSpace(row[1]),
			POS:         strings.TrimSpace(row[2]),
			Translation: strings.TrimSpace(row[3]),
			Level:       domain.CEFRLevel(strings.TrimSpace(row[4])),
		})
	}

	return NewStaticIndex(entries), nil
}

// Rank implements Index.Rank.
func (idx *StaticIndex) Rank(lemma string) int {
	if e, ok := idx.byLemma[strings.ToLower(lemma)]; ok {
		return e.Rank
	}
	return UnknownRank
}

// Translation implements Index.Translation.
func (idx *StaticIndex) Translation(lemma string) (string, bool) {
	if e, ok := idx.byLemma[strings.ToLower(lemma)]; ok && e.Translation != "" {
		return e.Translation, true
	}
	return "", false
}

// EstimateCEFR implements Index.EstimateCEFR. Lemmas carrying an
// explicit level use it; everything else is estimated from rank.
func (idx *StaticIndex) EstimateCEFR(lemma string) domain.CEFRLevel {
	if e, ok := idx.byLemma[strings.ToLower(lemma)]; ok && e.Level.IsValid() {
		return e.Level
	}
	return EstimateCEFRByRank(idx.Rank(lemma))
}

// ReferenceLemmas implements Index.ReferenceLemmas.
func (idx *StaticIndex) ReferenceLemmas(level domain.CEFRLevel) []string {
	lemmas := idx.byLevel[level]
	out := make([]string, len(lemmas))
	copy(out, lemmas)
	return out
}

// Lookup implements Index.Lookup.
func (idx *StaticIndex) Lookup(lemma string) (Entry, bool) {
	e, ok := idx.byLemma[strings.ToLower(lemma)]
	return e, ok
}

// EstimateCEFRByRank maps a frequency rank to an estimated CEFR band.
func EstimateCEFRByRank(rank int) domain.CEFRLevel {
	switch {
	case rank <= 500:
		return domain.CEFRLevelA1
	case rank <= 1500:
		return domain.CEFRLevelA2
	case rank <= 3000:
		return domain.CEFRLevelB1
	case rank <= 5000:
		return domain.CEFRLevelB2
	case rank <= 8000:
		return domain.CEFRLevelC1
	default:
		return domain.CEFRLevelC2
	}
}

// FrequencyTier labels a rank with a coarse usefulness tier.
func FrequencyTier(rank int) string {
	switch {
	case rank <= 100:
		return "top100"
	case rank <= 500:
		return "top500"
	case rank <= 1000:
		return "top1000"
	case rank <= 2500:
		return "top2500"
	case rank <= 5000:
		return "top5000"
	default:
		return "uncommon"
	}
}
