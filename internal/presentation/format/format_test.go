package format

import (
	"bytes"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	for _, want := range All {
		got, err := Parse(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = Parse("yaml")
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	tree := arbor.Parse("<p>hi</p>")

	tests := []struct {
		format Format
		want   string
	}{
		{JSON, `{"type":"document","children":[{"type":"element","tag":"p","children":[{"type":"text","data":"hi"}]}]}` + "\n"},
		{Text, "*Document*\n  <p>\n    \"hi\"\n"},
		{HTML, "<p>hi</p>"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tree, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree, Mermaid))
	assert.Contains(t, buf.String(), "graph TD")

	assert.Error(t, Write(&buf, tree, Format("xml")))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSON.ContentType())
	assert.Equal(t, "text/html; charset=utf-8", HTML.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", Mermaid.ContentType())
}
