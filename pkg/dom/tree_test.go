package dom_test

import (
	"slices"
	"testing"

	"github.com/aretw0/arbor/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds Document -> p -> [Text("Hello "), b -> Text("World")].
func sample(t *testing.T) (*dom.Tree, map[string]dom.NodeID) {
	t.Helper()
	tree := dom.NewTree()
	ids := map[string]dom.NodeID{}

	var err error
	ids["p"], err = tree.Append(tree.Root(), &dom.Element{TagName: "p", Attributes: []dom.Attribute{{Name: "class", Value: "x"}}})
	require.NoError(t, err)
	ids["hello"], err = tree.Append(ids["p"], dom.Text{Data: "Hello "})
	require.NoError(t, err)
	ids["b"], err = tree.Append(ids["p"], &dom.Element{TagName: "b"})
	require.NoError(t, err)
	ids["world"], err = tree.Append(ids["b"], dom.Text{Data: "World"})
	require.NoError(t, err)
	return tree, ids
}

func TestTree_NewTreeHoldsOnlyRoot(t *testing.T) {
	tree := dom.NewTree()

	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, dom.RootID, tree.Root())
	assert.Equal(t, dom.KindDocument, tree.Node(tree.Root()).Kind())

	parent, ok := tree.Parent(tree.Root())
	assert.False(t, ok)
	assert.Equal(t, dom.InvalidID, parent)
	assert.Equal(t, 0, tree.Depth())
}

func TestTree_AppendAndChildren(t *testing.T) {
	tree, ids := sample(t)

	children := slices.Collect(tree.Children(ids["p"]))
	assert.Equal(t, []dom.NodeID{ids["hello"], ids["b"]}, children)

	// Restartable: a second pass sees the same sequence.
	assert.Equal(t, children, slices.Collect(tree.Children(ids["p"])))

	parent, ok := tree.Parent(ids["world"])
	require.True(t, ok)
	assert.Equal(t, ids["b"], parent)
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 2, tree.Depth())
}

func TestTree_ChildrenStopsEarly(t *testing.T) {
	tree, ids := sample(t)

	var seen []dom.NodeID
	for id := range tree.Children(ids["p"]) {
		seen = append(seen, id)
		break
	}
	assert.Equal(t, []dom.NodeID{ids["hello"]}, seen)
}

func TestTree_AppendRejections(t *testing.T) {
	tree, ids := sample(t)

	_, err := tree.Append(ids["hello"], &dom.Element{TagName: "i"})
	assert.ErrorIs(t, err, dom.ErrNotContainer)

	_, err = tree.Append(tree.Root(), dom.Document{})
	assert.ErrorIs(t, err, dom.ErrSecondDocument)

	_, err = tree.Append(dom.NodeID(99), dom.Text{Data: "x"})
	assert.ErrorIs(t, err, dom.ErrUnknownNode)

	assert.Equal(t, 5, tree.Len(), "rejected appends must not grow the tree")
}

func TestTree_WalkPreOrderWithDepth(t *testing.T) {
	tree, _ := sample(t)

	type visit struct {
		kind  dom.Kind
		depth int
	}
	var got []visit
	tree.Walk(tree.Root(), func(id dom.NodeID, depth int) bool {
		got = append(got, visit{tree.Node(id).Kind(), depth})
		return true
	})

	assert.Equal(t, []visit{
		{dom.KindDocument, 0},
		{dom.KindElement, 1},
		{dom.KindText, 2},
		{dom.KindElement, 2},
		{dom.KindText, 3},
	}, got)
}

func TestTree_WalkSkipsChildren(t *testing.T) {
	tree, ids := sample(t)

	count := 0
	tree.Walk(tree.Root(), func(id dom.NodeID, _ int) bool {
		count++
		return id != ids["p"]
	})
	assert.Equal(t, 2, count)
}

func TestTree_Elements(t *testing.T) {
	tree, ids := sample(t)
	assert.Equal(t, []dom.NodeID{ids["p"], ids["b"]}, tree.Elements())
}

func TestKind_Capabilities(t *testing.T) {
	assert.True(t, dom.KindDocument.IsContainer())
	assert.True(t, dom.KindElement.IsContainer())
	assert.False(t, dom.KindText.IsContainer())

	assert.True(t, dom.KindDocument.IsDocument())
	assert.True(t, dom.KindElement.IsElement())
	assert.True(t, dom.KindText.IsText())
	assert.Equal(t, "Kind(9)", dom.Kind(9).String())
}

func TestElement_AttrReturnsFirstOccurrence(t *testing.T) {
	el := &dom.Element{TagName: "a", Attributes: []dom.Attribute{
		{Name: "id", Value: "one"},
		{Name: "id", Value: "two"},
	}}

	v, ok := el.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	_, ok = el.Attr("href")
	assert.False(t, ok)
}

func TestTree_CloneIsDeep(t *testing.T) {
	tree, ids := sample(t)
	clone := tree.Clone()

	_, err := clone.Append(ids["b"], dom.Text{Data: "!"})
	require.NoError(t, err)
	clone.Node(ids["p"]).(*dom.Element).Attributes[0].Value = "changed"

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 1, tree.NumChildren(ids["b"]))
	v, _ := tree.Node(ids["p"]).(*dom.Element).Attr("class")
	assert.Equal(t, "x", v)
}
