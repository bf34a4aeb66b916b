package domain

import "fmt"

// TrailingTextPolicy decides what happens to text still sitting in the text buffer
// when the input ends without a final '<'.
type TrailingTextPolicy string

const (
	// TrailingTextFlush appends the buffered text as a final Text node (default).
	TrailingTextFlush TrailingTextPolicy = "flush"
	// TrailingTextDrop discards it, matching a tokenizer that only flushes on '<'.
	TrailingTextDrop TrailingTextPolicy = "drop"
)

// ParseTrailingTextPolicy maps a configuration string to a policy.
// The empty string selects the default.
func ParseTrailingTextPolicy(s string) (TrailingTextPolicy, error) {
	switch TrailingTextPolicy(s) {
	case "", TrailingTextFlush:
		return TrailingTextFlush, nil
	case TrailingTextDrop:
		return TrailingTextDrop, nil
	default:
		return "", fmt.Errorf("unknown trailing text policy %q (want %q or %q)", s, TrailingTextFlush, TrailingTextDrop)
	}
}
