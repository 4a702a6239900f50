// Package scoring computes the unified CEFR score: a weighted blend of
// vocabulary coverage, grammar mastery, speaking accuracy, and content
// readiness, mapped onto the six CEFR bands with a sub-level split at
// each band midpoint.
//
// Level gating is reported alongside the continuous score but computed
// independently: level N+1 unlocks only when both vocabulary and
// grammar mastery at level N reach 80%, so a learner with a high blended
// score can still be locked out of advanced content by a grammar gap.
package scoring
