// Package htmlout serializes document trees back to HTML.
package htmlout

import (
	"io"
	"strings"

	"github.com/aretw0/arbor/internal/builder"
	"github.com/aretw0/arbor/pkg/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Convert builds the equivalent golang.org/x/net/html node graph.
// Tag names are kept exactly; attribute order and duplicates are preserved.
func Convert(tree *dom.Tree) *html.Node {
	return convert(tree, tree.Root())
}

func convert(tree *dom.Tree, id dom.NodeID) *html.Node {
	var n *html.Node
	switch v := tree.Node(id).(type) {
	case dom.Document:
		n = &html.Node{Type: html.DocumentNode}
	case *dom.Element:
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     v.TagName,
			DataAtom: atom.Lookup([]byte(v.TagName)),
			Attr:     make([]html.Attribute, 0, len(v.Attributes)),
		}
		for _, a := range v.Attributes {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
	case dom.Text:
		return &html.Node{Type: html.TextNode, Data: v.Data}
	}

	for child := range tree.Children(id) {
		n.AppendChild(convert(tree, child))
	}
	return n
}

// Render writes the tree as HTML. A void element that carries children (only
// possible in a decoded tree) is written empty, followed by its children.
func Render(w io.Writer, tree *dom.Tree) error {
	doc := Convert(tree)
	hoistVoidChildren(doc)
	return html.Render(w, doc)
}

func hoistVoidChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		hoistVoidChildren(c)
		c = next
	}
	if n.Type != html.ElementNode || n.Parent == nil || !isVoid(n.Data) {
		return
	}
	for n.LastChild != nil {
		c := n.LastChild
		n.RemoveChild(c)
		n.Parent.InsertBefore(c, n.NextSibling)
	}
}

// isVoid extends the builder's list with keygen, which html.Render also treats as void.
func isVoid(name string) bool {
	return builder.IsVoid(name) || name == "keygen"
}

// String returns the rendered HTML.
func String(tree *dom.Tree) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}
