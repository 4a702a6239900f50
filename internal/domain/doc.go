// Package domain defines the core business entities of the vocabulary
// tracker: vocabulary items, their spaced-repetition progress records,
// generated word forms, and the grammar topic taxonomy. Entities carry
// their own validation; scheduling math lives in the srs subpackage.
package domain
