// Package generation defines the boundary interfaces for external
// language-model collaborators: morphological form generation,
// translation, and pronunciation scoring. The application core depends
// only on these interfaces; the Gemini-backed implementations live in
// internal/platform/gemini.
package generation
