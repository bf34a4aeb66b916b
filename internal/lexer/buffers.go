package lexer

import "github.com/aretw0/arbor/pkg/dom"

// buffers are the accumulators of a single parse.
type buffers struct {
	text      []byte
	tagName   []byte
	attrName  []byte
	attrValue []byte
	attrs     []dom.Attribute
}

// resetTag prepares for a new tag.
func (b *buffers) resetTag() {
	b.tagName = b.tagName[:0]
	b.attrs = nil
}

// resetAttribute clears the pending attribute name and value.
func (b *buffers) resetAttribute() {
	b.attrName = b.attrName[:0]
	b.attrValue = b.attrValue[:0]
}

// commitAttribute moves the pending name/value pair onto the attribute list.
// A pair with an empty name is discarded. Both buffers are empty afterwards.
func (b *buffers) commitAttribute() {
	if len(b.attrName) > 0 {
		b.attrs = append(b.attrs, dom.Attribute{
			Name:  string(b.attrName),
			Value: string(b.attrValue),
		})
	}
	b.resetAttribute()
}

// takeText returns the buffered text and empties the buffer.
func (b *buffers) takeText() string {
	s := string(b.text)
	b.text = b.text[:0]
	return s
}

// takeAttributes hands the attribute list over to the caller.
func (b *buffers) takeAttributes() []dom.Attribute {
	attrs := b.attrs
	b.attrs = nil
	return attrs
}
