package unfold

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a document or setting failed validation.
	ErrValidation = errors.New("validation error")

	// ErrTruncationUnavailable indicates the collapsed rendering cannot be
	// derived from the current text and layout metrics. Callers fall back
	// to the unhinted, line-capped text.
	ErrTruncationUnavailable = errors.New("truncation unavailable")
)
