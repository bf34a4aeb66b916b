package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/arbor/pkg/dom"
)

// TagCount is one row of the tag histogram.
type TagCount struct {
	Tag   string
	Count int
}

// Report summarizes a parsed tree for the inspect command.
type Report struct {
	Title      string
	Nodes      int
	Elements   int
	Texts      int
	Attributes int
	Depth      int
	TextBytes  int
	Tags       []TagCount
}

// NewReport walks the tree once and collects its statistics.
// Tags are ordered by descending count, then by name.
func NewReport(title string, tree *dom.Tree) Report {
	r := Report{Title: title, Nodes: tree.Len(), Depth: tree.Depth()}
	counts := make(map[string]int)

	tree.Walk(tree.Root(), func(id dom.NodeID, _ int) bool {
		switch n := tree.Node(id).(type) {
		case *dom.Element:
			r.Elements++
			r.Attributes += len(n.Attributes)
			counts[n.TagName]++
		case dom.Text:
			r.Texts++
			r.TextBytes += len(n.Data)
		}
		return true
	})

	for tag, n := range counts {
		r.Tags = append(r.Tags, TagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(r.Tags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	return r
}

// Markdown formats the report as a markdown document.
func (r Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Title)

	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Nodes | %d |\n", r.Nodes)
	fmt.Fprintf(&sb, "| Elements | %d |\n", r.Elements)
	fmt.Fprintf(&sb, "| Text nodes | %d |\n", r.Texts)
	fmt.Fprintf(&sb, "| Attributes | %d |\n", r.Attributes)
	fmt.Fprintf(&sb, "| Depth | %d |\n", r.Depth)
	fmt.Fprintf(&sb, "| Text bytes | %d |\n", r.TextBytes)

	if len(r.Tags) == 0 {
		sb.WriteString("\n_No elements._\n")
		return sb.String()
	}

	sb.WriteString("\n## Tags\n\n| Tag | Count |\n|---|---|\n")
	for _, t := range r.Tags {
		fmt.Fprintf(&sb, "| `%s` | %d |\n", strings.ReplaceAll(t.Tag, "|", `\|`), t.Count)
	}
	return sb.String()
}
