// Package content imports study material (articles, transcripts,
// stories) and reduces each piece to its extracted lemma list. Stored
// packages feed the content dimension of the unified CEFR score.
package content
