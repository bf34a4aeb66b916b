package dom

import (
	"encoding/json"
	"fmt"
)

// wireNode is the nested JSON shape of a tree, as served by the HTTP and MCP
// adapters and stored by the caches.
type wireNode struct {
	Type       string      `json:"type"`
	Tag        string      `json:"tag,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Data       string      `json:"data,omitempty"`
	Children   []wireNode  `json:"children,omitempty"`
}

// MarshalJSON encodes the tree as nested objects rooted at the document.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.wire(RootID))
}

func (t *Tree) wire(id NodeID) wireNode {
	var w wireNode
	switch n := t.slots[id].node.(type) {
	case Document:
		w.Type = KindDocument.String()
	case *Element:
		w.Type = KindElement.String()
		w.Tag = n.TagName
		w.Attributes = n.Attributes
	case Text:
		w.Type = KindText.String()
		w.Data = n.Data
	}
	for _, c := range t.slots[id].children {
		w.Children = append(w.Children, t.wire(c))
	}
	return w
}

// UnmarshalJSON rebuilds a tree from the shape produced by MarshalJSON.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var root wireNode
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	if root.Type != KindDocument.String() {
		return fmt.Errorf("decode tree: root is %q, want %q", root.Type, KindDocument)
	}

	*t = *NewTree()
	return t.appendWire(RootID, root.Children)
}

func (t *Tree) appendWire(parent NodeID, children []wireNode) error {
	for _, w := range children {
		var n Node
		switch w.Type {
		case KindElement.String():
			n = &Element{TagName: w.Tag, Attributes: w.Attributes}
		case KindText.String():
			if len(w.Children) > 0 {
				return fmt.Errorf("decode tree: text node with children: %w", ErrNotContainer)
			}
			n = Text{Data: w.Data}
		default:
			return fmt.Errorf("decode tree: unexpected node type %q", w.Type)
		}

		id, err := t.Append(parent, n)
		if err != nil {
			return fmt.Errorf("decode tree: %w", err)
		}
		if err := t.appendWire(id, w.Children); err != nil {
			return err
		}
	}
	return nil
}
