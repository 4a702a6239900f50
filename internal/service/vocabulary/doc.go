// Package vocabulary manages the learner's personal vocabulary list.
//
// Adding a word normalizes it to its lemma, fills in a translation and
// CEFR estimate from the frequency index (falling back to the
// translation provider for words the index does not know), and creates
// the item together with its initial progress record in one
// transaction. An item without a progress record is an invariant
// violation downstream, so the two never commit separately.
package vocabulary
