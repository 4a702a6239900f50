// Package gemini implements the generation interfaces on top of
// Google's Gemini API: morphological form generation (single and
// batched) and text translation. Calls retry transient failures with
// exponential backoff and jitter; malformed model output maps onto
// generation.ErrInvalidResponse so callers can degrade gracefully.
package gemini
