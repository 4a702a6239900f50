package language

import "strings"

// Lemmatizer reduces Spanish surface forms to a best-guess base form:
// infinitives for verbs, singular masculine for nouns and adjectives.
// It consults the frequency index to verify candidate bases and to
// resolve ambiguous readings (lower rank wins). Applying Lemmatize
// twice always equals applying it once.
type Lemmatizer struct {
	index Index
}

// NewLemmatizer creates a Lemmatizer backed by the given frequency index.
func NewLemmatizer(index Index) *Lemmatizer {
	if index == nil {
		panic("index cannot be nil")
	}
	return &Lemmatizer{index: index}
}

// suffixRule rewrites one inflection suffix to a candidate base ending.
// Candidates lists the endings to try in order of preference; when more
// than one candidate exists in the frequency index the lower rank wins,
// and when none does, fallback decides (empty fallback keeps the word).
type suffixRule struct {
	suffix     string
	minStem    int
	candidates []string
	fallback   string
}

// Ordered regular-inflection rules, longest suffixes first within each
// family so "hablaré" hits the future rule before the bare "-é"
// preterite rule. The set mirrors the classic -ar/-er/-ir paradigms:
// gerund, participle, future, imperfect, preterite, present.
var suffixRules = []suffixRule{
	// Gerund
	{suffix: "ando", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "iendo", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	// Past participle
	{suffix: "ado", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "ido", minStem: 2, candidates: []string{"er", "ir"}, fallback: "ir"},
	// Future (infinitive + person ending, so the stem keeps ar/er/ir)
	{suffix: "aremos", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "aréis", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "arás", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "arán", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "aré", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "ará", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "eremos", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "eréis", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "erás", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "erán", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "eré", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "erá", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "iremos", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "iréis", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "irás", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "irán", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "iré", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "irá", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	// Imperfect
	{suffix: "ábamos", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "abais", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "abas", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "aban", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "aba", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "íamos", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	{suffix: "íais", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	{suffix: "ías", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	{suffix: "ían", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	{suffix: "ía", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	// Preterite
	{suffix: "asteis", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "isteis", minStem: 2, candidates: []string{"er", "ir"}, fallback: "ir"},
	{suffix: "aste", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "iste", minStem: 2, candidates: []string{"er", "ir"}, fallback: "ir"},
	{suffix: "aron", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "ieron", minStem: 2, candidates: []string{"er", "ir"}, fallback: "er"},
	{suffix: "ió", minStem: 2, candidates: []string{"er", "ir"}, fallback: "ir"},
	{suffix: "ó", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "é", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "í", minStem: 2, candidates: []string{"er", "ir"}, fallback: "ir"},
	// Present
	{suffix: "amos", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "áis", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "emos", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "éis", minStem: 2, candidates: []string{"er"}, fallback: "er"},
	{suffix: "imos", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "ís", minStem: 2, candidates: []string{"ir"}, fallback: "ir"},
	{suffix: "an", minStem: 2, candidates: []string{"ar"}, fallback: "ar"},
	{suffix: "en", minStem: 2, candidates: []string{"er", "ir"}, fallback: ""},
}

// Lemmatize returns the best-guess base form of the word.
//
// Resolution order: known proper names pass through untouched, then the
// irregular-verb table, then words the index already lists as lemmas,
// then the ordered suffix rules, then the
// rank-resolved ambiguous endings (-as, -a, -o), then plural stripping
// verified against the frequency index. A word matching nothing is
// returned unchanged.
func (l *Lemmatizer) Lemmatize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return word
	}

	if IsProperName(word) {
		return word
	}

	if infinitive, ok := irregularVerbs[word]; ok {
		return infinitive
	}

	// A word the index already lists as a lemma is a base form; without
	// this check "país" would hit the -ís verb rule and "café" the -é
	// preterite rule.
	if l.inIndex(word) {
		return word
	}

	runes := []rune(word)

	for _, rule := range suffixRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := string(runes[:len(runes)-len([]rune(rule.suffix))])
		if len([]rune(stem)) < rule.minStem {
			continue
		}

		if best, ok := l.lowestRank(appendEndings(stem, rule.candidates)...); ok {
			return best
		}
		if rule.fallback != "" {
			return stem + rule.fallback
		}
		return word
	}

	if lemma, ok := l.resolveAmbiguous(word, runes); ok {
		return lemma
	}

	return l.stripPlural(word, runes)
}

// resolveAmbiguous handles the endings that compete across parts of
// speech: -as (plural adjective vs 2nd-person verb), -a (feminine
// adjective or noun vs 3rd-person verb), and -o (masculine adjective
// or noun vs 1st-person verb). Candidates are the word itself, the
// masculine form, and the infinitive; whichever exists in the index
// with the lowest rank wins. Adjective readings only count when the
// index agrees the base is an adjective or adverb.
func (l *Lemmatizer) resolveAmbiguous(word string, runes []rune) (string, bool) {
	n := len(runes)

	switch {
	case strings.HasSuffix(word, "as") && n > 3:
		// Plural adjective (bajas -> bajo), 2nd-person verb
		// (hablas -> hablar), or plural noun (casas -> casa).
		if lemma, ok := l.pickReading(
			reading{lemma: string(runes[:n-2]) + "o", adjectiveOnly: true},
			reading{lemma: string(runes[:n-2]) + "ar"},
			reading{lemma: string(runes[:n-1])},
		); ok {
			return lemma, true
		}
		// No reading in the index: treat as a verb form. The resulting
		// -ar infinitive matches no further rule, so a second pass
		// returns it unchanged.
		return string(runes[:n-2]) + "ar", true

	case strings.HasSuffix(word, "a") && n > 3 &&
		!strings.HasSuffix(word, "ía") && !strings.HasSuffix(word, "ea") && !strings.HasSuffix(word, "oa"):
		// Feminine adjective (baja -> bajo) or 3rd-person verb
		// (habla -> hablar). In-index words like "casa" never reach
		// this point.
		return l.pickReading(
			reading{lemma: string(runes[:n-1]) + "o", adjectiveOnly: true},
			reading{lemma: string(runes[:n-1]) + "ar"},
		)

	case strings.HasSuffix(word, "o") && n > 3:
		// 1st-person verb (hablo -> hablar), verified against the
		// index so "dinero" is not turned into a verb.
		return l.pickReading(
			reading{lemma: string(runes[:n-1]) + "ar"},
		)
	}

	return "", false
}

type reading struct {
	lemma         string
	adjectiveOnly bool
}

// pickReading returns the candidate reading with the lowest frequency
// rank among those present in the index. Readings flagged adjectiveOnly
// count only when the index lists the base as an adjective or adverb.
func (l *Lemmatizer) pickReading(candidates ...reading) (string, bool) {
	best := ""
	bestRank := UnknownRank

	for _, c := range candidates {
		entry, ok := l.index.Lookup(c.lemma)
		if !ok {
			continue
		}
		if c.adjectiveOnly && entry.POS != "adj" && entry.POS != "adv" {
			continue
		}
		if entry.Rank < bestRank {
			best = c.lemma
			bestRank = entry.Rank
		}
	}

	return best, best != ""
}

// stripPlural removes plural endings only when the resulting singular
// exists in the frequency index: -es after a d/n/r/l/s/z stem, plain -s
// otherwise.
func (l *Lemmatizer) stripPlural(word string, runes []rune) string {
	n := len(runes)

	if strings.HasSuffix(word, "es") && n > 3 {
		singular := string(runes[:n-2])
		if strings.ContainsAny(string(runes[n-3]), "dnrlsz") && l.inIndex(singular) {
			return singular
		}
	}

	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "es") && n > 2 {
		singular := string(runes[:n-1])
		if l.inIndex(singular) {
			return singular
		}
	}

	return word
}

func (l *Lemmatizer) inIndex(lemma string) bool {
	return l.index.Rank(lemma) < UnknownRank
}

// lowestRank returns the candidate with the lowest frequency rank among
// those present in the index.
func (l *Lemmatizer) lowestRank(candidates ...string) (string, bool) {
	best := ""
	bestRank := UnknownRank

	for _, c := range candidates {
		if rank := l.index.Rank(c); rank < bestRank {
			best = c
			bestRank = rank
		}
	}

	return best, best != ""
}

func appendEndings(stem string, endings []string) []string {
	out := make([]string, len(endings))
	for i, e := range endings {
		out[i] = stem + e
	}
	return out
}
