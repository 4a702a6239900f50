// Package store defines the persistence interfaces for the learner's
// vocabulary, progress, word forms, grammar taxonomy, and imported
// content packages, together with the shared error taxonomy and
// transaction helper. Implementations live under platform-specific
// packages (internal/platform/postgres).
package store
