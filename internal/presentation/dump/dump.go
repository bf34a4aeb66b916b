// Package dump prints a document tree for debugging: depth-first, pre-order,
// two spaces of indentation per level.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor/pkg/dom"
	"github.com/muesli/termenv"
)

// Printer renders trees, optionally colored for a terminal.
type Printer struct {
	profile termenv.Profile
}

// NewPrinter creates a printer for the given color profile.
// termenv.Ascii produces plain text.
func NewPrinter(profile termenv.Profile) *Printer {
	return &Printer{profile: profile}
}

// Write prints the whole tree as plain text.
func Write(w io.Writer, tree *dom.Tree) error {
	return NewPrinter(termenv.Ascii).Write(w, tree)
}

// String returns the plain-text dump of the tree.
func String(tree *dom.Tree) string {
	var sb strings.Builder
	_ = Write(&sb, tree)
	return sb.String()
}

// Write prints the whole tree.
func (p *Printer) Write(w io.Writer, tree *dom.Tree) error {
	return p.WriteNode(w, tree, tree.Root(), 0)
}

// WriteNode prints id and its descendants, indenting id at depth.
func (p *Printer) WriteNode(w io.Writer, tree *dom.Tree, id dom.NodeID, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), p.line(tree.Node(id))); err != nil {
		return err
	}
	for child := range tree.Children(id) {
		if err := p.WriteNode(w, tree, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) line(n dom.Node) string {
	switch n := n.(type) {
	case dom.Document:
		return p.style("*Document*", "#818cf8")
	case *dom.Element:
		var sb strings.Builder
		sb.WriteString("<")
		sb.WriteString(p.style(n.TagName, "#c084fc"))
		for _, a := range n.Attributes {
			sb.WriteString(" ")
			sb.WriteString(p.style(a.Name, "#f472b6"))
			sb.WriteString("=")
			sb.WriteString(a.Value)
		}
		sb.WriteString(">")
		return sb.String()
	case dom.Text:
		return p.style(`"`+n.Data+`"`, "#a3e635")
	}
	return "???"
}

func (p *Printer) style(s, hex string) string {
	if p.profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(p.profile.Color(hex)).String()
}
