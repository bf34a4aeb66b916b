package dump_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/dump"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tree := arbor.Parse(`<p class='intro' id="x">Hello <b>World</b></p><br>`)

	want := strings.Join([]string{
		"*Document*",
		"  <p class=intro id=x>",
		`    "Hello "`,
		"    <b>",
		`      "World"`,
		"  <br>",
		"",
	}, "\n")
	assert.Equal(t, want, dump.String(tree))
}

func TestString_EmptyDocument(t *testing.T) {
	assert.Equal(t, "*Document*\n", dump.String(arbor.Parse("")))
}

func TestWriteNode_StartsAtGivenDepth(t *testing.T) {
	tree := arbor.Parse("<ul><li>a</li></ul>")
	var buf bytes.Buffer

	require.NoError(t, dump.NewPrinter(termenv.Ascii).WriteNode(&buf, tree, 1, 2))
	assert.Equal(t, "    <ul>\n      <li>\n        \"a\"\n", buf.String())
}

func TestPrinter_ColorAddsEscapes(t *testing.T) {
	tree := arbor.Parse("<p>x</p>")
	var buf bytes.Buffer

	require.NoError(t, dump.NewPrinter(termenv.TrueColor).Write(&buf, tree))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "p")
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after == 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	tree := arbor.Parse("<a><b><c></c></b></a>")
	err := dump.Write(&failingWriter{after: 2}, tree)
	assert.EqualError(t, err, "disk full")
}

func TestWrite_ConcurrentDumpsDoNotShareDepth(t *testing.T) {
	tree := arbor.Parse("<a><b><c>deep</c></b></a>")
	want := dump.String(tree)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := dump.String(tree); got != want {
					t.Errorf("concurrent dump differs:\n%s", got)
				}
			}
		}()
	}
	wg.Wait()
}
