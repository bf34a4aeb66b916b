/*
Package dom is the minimal document object model produced by the arbor parser.

A Tree is an arena of nodes addressed by NodeID. The tree owns every node; anything
else that needs to refer to a node (the open-ancestor stack of the builder, a
traversal, a cache) holds a plain NodeID. Nodes are attached to their parent at
creation and never move.

Node is a closed set of variants: Document, *Element and Text. Consumers switch on the
concrete type:

	switch n := tree.Node(id).(type) {
	case dom.Document:
	case *dom.Element:
		fmt.Println(n.TagName)
	case dom.Text:
		fmt.Println(n.Data)
	}
*/
package dom
