package language

import (
	"strings"
	"unicode"
)

// Normalize prepares Spanish text for tokenization: lowercase,
// punctuation stripped (letters and digits kept, diacritics preserved),
// whitespace collapsed.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// Tokenize splits Spanish text into word tokens: lowercase, accents
// preserved, tokens of length one and pure digit runs dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))

	tokens := make([]string, 0, len(fields))
	for _, t := range fields {
		if len([]rune(t)) <= 1 || isDigits(t) {
			continue
		}
		tokens = append(tokens, t)
	}

	return tokens
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// ExtractSentences splits text on sentence-ending punctuation and
// returns trimmed sentences long enough to serve as context examples.
func ExtractSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '¡' || r == '¿'
	})

	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if len([]rune(s)) > 10 {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

// FindWordContext returns up to max sentences containing the word.
// Matching is a case-insensitive substring check, which lets callers
// match on the surface form observed in the text rather than the lemma.
func FindWordContext(word string, sentences []string, max int) []string {
	needle := strings.ToLower(word)

	var contexts []string
	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), needle) {
			contexts = append(contexts, sentence)
			if len(contexts) >= max {
				break
			}
		}
	}

	return contexts
}
