package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/arbor/internal/presentation/dump"
	"github.com/aretw0/arbor/internal/presentation/format"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/muesli/termenv"
)

// ParseOptions configures RunParse.
type ParseOptions struct {
	Format  format.Format
	Profile termenv.Profile
	// Highlight marks elements with this tag in mermaid output.
	Highlight string
}

// RunParse parses markup and writes it to w in the requested format.
// Text output is colored when the profile allows it.
func RunParse(ctx context.Context, rt *Runtime, markup string, w io.Writer, opts ParseOptions) error {
	tree, err := rt.Parser.Parse(ctx, markup)
	if err != nil {
		return err
	}

	switch {
	case opts.Format == format.Text:
		return dump.NewPrinter(opts.Profile).Write(w, tree)
	case opts.Format == format.Mermaid && opts.Highlight != "":
		_, err := io.WriteString(w, graph.GenerateMermaid(tree, &graph.Overlay{Tag: opts.Highlight}))
		return err
	}
	return format.Write(w, tree, opts.Format)
}

// RunInspect parses markup and writes the statistics report. With render set
// the markdown is styled with glamour.
func RunInspect(ctx context.Context, rt *Runtime, title, markup string, w io.Writer, render bool) error {
	tree, err := rt.Parser.Parse(ctx, markup)
	if err != nil {
		return err
	}

	md := tui.NewReport(title, tree).Markdown()
	if render {
		out, err := tui.NewRenderer()(md)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		md = out
	}
	_, err = io.WriteString(w, md)
	return err
}
