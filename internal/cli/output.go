package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/arbor/internal/input"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorProfile resolves a --color mode for w. Auto colors only terminals.
func ColorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case ColorNever:
		return termenv.Ascii, nil
	case ColorAlways:
		return termenv.ANSI256, nil
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return termenv.NewOutput(f).ColorProfile(), nil
		}
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
}

// ReadMarkup loads markup from a file path, or from stdin when path is "" or "-".
func ReadMarkup(path string, stdin io.Reader, limit int64) (string, error) {
	if path == "" || path == "-" {
		return input.Read(stdin, limit)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return input.Read(f, limit)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
