// Package format selects how a parsed tree is written out.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/arbor/internal/presentation/dump"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/htmlout"
	"github.com/aretw0/arbor/pkg/dom"
)

// Format names an output encoding.
type Format string

const (
	JSON    Format = "json"
	Text    Format = "text"
	Mermaid Format = "mermaid"
	HTML    Format = "html"
)

// All lists the supported formats.
var All = []Format{JSON, Text, Mermaid, HTML}

// Parse validates a user-supplied format name. The empty string means JSON.
func Parse(s string) (Format, error) {
	if s == "" {
		return JSON, nil
	}
	for _, f := range All {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want json, text, mermaid or html)", s)
}

// ContentType is the media type served over HTTP.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case HTML:
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Write encodes tree to w.
func Write(w io.Writer, tree *dom.Tree, f Format) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(tree)
	case Text:
		return dump.Write(w, tree)
	case Mermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(tree, nil))
		return err
	case HTML:
		return htmlout.Render(w, tree)
	}
	return fmt.Errorf("unknown format %q", f)
}
