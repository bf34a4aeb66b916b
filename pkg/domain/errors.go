package domain

import "errors"

// ErrInvariantViolation marks an internal programming error, such as the tokenizer
// reaching a state it does not know or a page handle being released past zero.
// It is only ever delivered through panic.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrDocumentNotFound is returned when a cache or document source has no entry for a key.
var ErrDocumentNotFound = errors.New("document not found")

var (
	// ErrInputTooLarge is returned when network input exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	// ErrInvalidUTF8 is returned when network input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input contains invalid UTF-8 sequences")
)
