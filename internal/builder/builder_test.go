package builder_test

import (
	"slices"
	"testing"

	"github.com/aretw0/arbor/internal/builder"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_StartsWithRootOnly(t *testing.T) {
	b := builder.New()

	assert.Equal(t, 1, b.Depth())
	assert.Equal(t, dom.RootID, b.Current())
	assert.Equal(t, 1, b.Tree().Len())
}

func TestBuilder_OpenPushesAndAttaches(t *testing.T) {
	b := builder.New()

	b.OpenElement("div", []dom.Attribute{{Name: "id", Value: "main"}})
	div := b.Current()
	b.FlushText("hi")

	assert.Equal(t, 2, b.Depth())
	tree := b.Tree()
	el, ok := tree.Node(div).(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "div", el.TagName)
	assert.Equal(t, []dom.Attribute{{Name: "id", Value: "main"}}, el.Attributes)

	children := slices.Collect(tree.Children(div))
	require.Len(t, children, 1)
	assert.Equal(t, dom.Text{Data: "hi"}, tree.Node(children[0]))
}

func TestBuilder_VoidElementsArePoppedImmediately(t *testing.T) {
	for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"} {
		t.Run(name, func(t *testing.T) {
			b := builder.New()
			b.OpenElement(name, nil)
			b.FlushText("after")

			assert.Equal(t, 1, b.Depth())
			tree := b.Tree()
			assert.Equal(t, 2, tree.NumChildren(tree.Root()), "text must land next to the void element")
			assert.Equal(t, 0, tree.NumChildren(dom.NodeID(1)))
		})
	}
}

func TestBuilder_NonVoidNames(t *testing.T) {
	for _, name := range []string{"BR", "Img", "br/", "div", "brx", ""} {
		assert.False(t, builder.IsVoid(name), name)
	}
}

func TestBuilder_StrayCloseKeepsRoot(t *testing.T) {
	b := builder.New()

	b.CloseElement()
	b.CloseElement()

	assert.Equal(t, 1, b.Depth())
	assert.Equal(t, dom.RootID, b.Current())
	assert.Equal(t, 1, b.Tree().Len())

	b.FlushText("still works")
	assert.Equal(t, 1, b.Tree().NumChildren(dom.RootID))
}

func TestBuilder_CloseReturnsToParent(t *testing.T) {
	b := builder.New()

	b.OpenElement("ul", nil)
	ul := b.Current()
	b.OpenElement("li", nil)
	b.CloseElement()
	assert.Equal(t, ul, b.Current())
	b.CloseElement()
	assert.Equal(t, dom.RootID, b.Current())
}
