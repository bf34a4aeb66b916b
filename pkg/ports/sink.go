package ports

import "github.com/aretw0/arbor/pkg/dom"

// TreeSink receives the side effects of the tokenizer's transition function.
// Implementations mutate a document tree; the tokenizer never touches the tree itself.
type TreeSink interface {
	// FlushText appends a Text node holding data to the current container.
	FlushText(data string)

	// OpenElement creates an element, appends it to the current container and makes
	// it the current container (void elements are closed again at once).
	OpenElement(name string, attrs []dom.Attribute)

	// CloseElement closes the current container. The document root is never closed.
	CloseElement()
}
