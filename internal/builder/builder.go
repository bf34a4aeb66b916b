// Package builder turns tokenizer events into a dom.Tree.
package builder

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Builder implements ports.TreeSink over a dom.Tree. Its only state is the stack
// of open containers, which always starts with the document root.
type Builder struct {
	tree  *dom.Tree
	stack []dom.NodeID
}

var _ ports.TreeSink = (*Builder)(nil)

// New creates a builder over a fresh tree.
func New() *Builder {
	tree := dom.NewTree()
	return &Builder{
		tree:  tree,
		stack: []dom.NodeID{tree.Root()},
	}
}

// Tree returns the tree being built. Ownership passes to the caller once the
// tokenizer is done.
func (b *Builder) Tree() *dom.Tree { return b.tree }

// Current returns the container that receives the next child.
func (b *Builder) Current() dom.NodeID { return b.stack[len(b.stack)-1] }

// Depth returns the number of open containers, the root included.
func (b *Builder) Depth() int { return len(b.stack) }

// FlushText appends a Text node to the current container.
func (b *Builder) FlushText(data string) {
	b.append(dom.Text{Data: data})
}

// OpenElement appends an element to the current container and pushes it.
// Void elements are popped again immediately.
func (b *Builder) OpenElement(name string, attrs []dom.Attribute) {
	id := b.append(&dom.Element{TagName: name, Attributes: attrs})
	b.stack = append(b.stack, id)
	if IsVoid(name) {
		b.pop()
	}
}

// CloseElement pops the current container. A close with only the root open is ignored.
func (b *Builder) CloseElement() {
	b.pop()
}

func (b *Builder) pop() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *Builder) append(n dom.Node) dom.NodeID {
	id, err := b.tree.Append(b.Current(), n)
	if err != nil {
		// Only containers are ever pushed, so this cannot fail.
		panic(fmt.Errorf("builder: %w: %w", domain.ErrInvariantViolation, err))
	}
	return id
}
