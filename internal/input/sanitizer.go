// Package input guards the parser against oversized or malformed network input.
// Markup is never rewritten: it is either accepted as is or rejected.
package input

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/arbor/pkg/domain"
)

var (
	// DefaultMaxSize is 1MiB.
	DefaultMaxSize int64 = 1 << 20
	// EnvMaxSize is the environment variable that overrides the configured limit.
	EnvMaxSize = "ARBOR_MAX_INPUT_SIZE"
)

// MaxSize resolves the effective limit: the environment first, then configured,
// then DefaultMaxSize.
func MaxSize(configured int64) int64 {
	if val := os.Getenv(EnvMaxSize); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil && size > 0 {
			return size
		}
	}
	if configured > 0 {
		return configured
	}
	return DefaultMaxSize
}

// Sanitize enforces the size limit and validates UTF-8.
func Sanitize(markup string, limit int64) (string, error) {
	if int64(len(markup)) > limit {
		// Rejected rather than truncated: a cut tag would change the tree.
		return "", fmt.Errorf("%w: size=%d limit=%d", domain.ErrInputTooLarge, len(markup), limit)
	}
	if !utf8.ValidString(markup) {
		return "", domain.ErrInvalidUTF8
	}
	return markup, nil
}

// Read consumes r up to limit bytes and sanitizes the result.
func Read(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return Sanitize(string(data), limit)
}
