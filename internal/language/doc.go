// Package language provides the Spanish text plumbing the analyzer and
// scorer are built on: normalization and tokenization, a heuristic
// rule-based lemmatizer, a stop-word list, and a static frequency index
// with CEFR estimates.
//
// The morphology here is deliberately approximate. It covers a table of
// high-frequency irregular verbs plus ordered suffix-stripping rules
// for regular -ar/-er/-ir inflections, and resolves ambiguous forms by
// frequency rank. It is not a linguistic parser.
package language
