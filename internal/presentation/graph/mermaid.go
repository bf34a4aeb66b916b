package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/dom"
)

// maxLabel bounds text node labels so long paragraphs keep the chart readable.
const maxLabel = 24

// Overlay marks nodes to highlight on the chart.
type Overlay struct {
	// Tag highlights every element with this tag name.
	Tag string
	// Selected highlights a single node.
	Selected dom.NodeID
}

// GenerateMermaid produces a Mermaid flowchart of the tree.
// It applies semantic styling:
// - Document: ((Circle))
// - Element: [Rectangle] labelled with the tag and its attributes
// - Text: [/Parallelogram/] with a truncated quote
// Edges go from parent to child in document order.
func GenerateMermaid(tree *dom.Tree, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	tree.Walk(tree.Root(), func(id dom.NodeID, _ int) bool {
		opener, closer, label := shape(tree.Node(id))
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(id), opener, escapeLabel(label), closer)
		if parent, ok := tree.Parent(id); ok {
			fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(parent), nodeID(id))
		}
		return true
	})

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef match fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		if overlay.Tag != "" {
			for _, id := range tree.Elements() {
				if tree.Node(id).(*dom.Element).TagName == overlay.Tag {
					fmt.Fprintf(&sb, "    class %s match;\n", nodeID(id))
				}
			}
		}
		if overlay.Selected > dom.RootID && tree.Contains(overlay.Selected) {
			fmt.Fprintf(&sb, "    class %s selected;\n", nodeID(overlay.Selected))
		}
	}

	return sb.String()
}

func shape(n dom.Node) (opener, closer, label string) {
	switch n := n.(type) {
	case dom.Document:
		return "((", "))", "Document"
	case *dom.Element:
		var sb strings.Builder
		sb.WriteString("<")
		sb.WriteString(n.TagName)
		for _, a := range n.Attributes {
			fmt.Fprintf(&sb, " %s=%s", a.Name, a.Value)
		}
		sb.WriteString(">")
		return "[", "]", sb.String()
	case dom.Text:
		return "[/", "/]", truncate(n.Data)
	}
	return "[", "]", "?"
}

func nodeID(id dom.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func truncate(s string) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= maxLabel {
		return string(r)
	}
	return string(r[:maxLabel-1]) + "…"
}

// escapeLabel uses Mermaid entity codes for characters that end or break a quoted label.
func escapeLabel(s string) string {
	r := strings.NewReplacer(
		`"`, "#quot;",
		"<", "#lt;",
		">", "#gt;",
	)
	return r.Replace(s)
}
