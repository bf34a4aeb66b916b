package input

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_SizeLimit(t *testing.T) {
	const limit = 16

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(strings.Repeat("a", tt.size), limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitize_KeepsControlCharacters(t *testing.T) {
	markup := "<p>\x1b[31mRed\x00</p>\r\n"
	got, err := Sanitize(markup, 1024)
	require.NoError(t, err)
	assert.Equal(t, markup, got)
}

func TestSanitize_InvalidUTF8(t *testing.T) {
	_, err := Sanitize("<p>\xff</p>", 1024)
	assert.ErrorIs(t, err, domain.ErrInvalidUTF8)
}

func TestMaxSize(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvMaxSize, "")
		assert.Equal(t, DefaultMaxSize, MaxSize(0))
	})
	t.Run("configured", func(t *testing.T) {
		t.Setenv(EnvMaxSize, "")
		assert.Equal(t, int64(512), MaxSize(512))
	})
	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(EnvMaxSize, "64")
		assert.Equal(t, int64(64), MaxSize(512))
	})
	t.Run("bad environment ignored", func(t *testing.T) {
		t.Setenv(EnvMaxSize, "lots")
		assert.Equal(t, int64(512), MaxSize(512))
	})
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("<b>ok</b>"), 9)
	require.NoError(t, err)
	assert.Equal(t, "<b>ok</b>", got)

	_, err = Read(strings.NewReader("<b>too long</b>"), 9)
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)
}
