// Package lexer implements the tokenizer of the arbor pipeline: a byte-driven state
// machine whose transitions fire ports.TreeSink callbacks.
package lexer

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Options tune the behavior of the tokenizer at its edges.
type Options struct {
	// TrailingText decides the fate of text buffered when the input ends.
	TrailingText domain.TrailingTextPolicy

	// UnquotedValues lets a value start without a quote after '=', through
	// InAttributeValueUnquoted. Without it those bytes are ignored.
	UnquotedValues bool
}

// Tokenizer consumes markup one byte at a time. It is single use and not safe
// for concurrent use; each parse creates its own.
type Tokenizer struct {
	sink    ports.TreeSink
	opts    Options
	state   State
	closing bool
	buf     buffers
}

// New creates a tokenizer in the Free state that reports to sink.
func New(sink ports.TreeSink, opts Options) *Tokenizer {
	if opts.TrailingText == "" {
		opts.TrailingText = domain.TrailingTextFlush
	}
	return &Tokenizer{sink: sink, opts: opts, state: Free}
}

// Run tokenizes the whole input in a single forward pass and then applies the
// end-of-input rules.
func (t *Tokenizer) Run(input string) {
	for i := 0; i < len(input); i++ {
		t.step(input[i])
	}
	t.finish()
}

// State returns the current lexical state.
func (t *Tokenizer) State() State { return t.state }

func (t *Tokenizer) finish() {
	// A tag still open at this point is abandoned.
	if t.state == Free && len(t.buf.text) > 0 && t.opts.TrailingText == domain.TrailingTextFlush {
		t.sink.FlushText(t.buf.takeText())
	}
}

// moveTo performs the entry side effects of next and flushes pending text when
// leaving Free.
func (t *Tokenizer) moveTo(next State) {
	switch next {
	case BeforeTagName:
		t.closing = false
		t.buf.resetTag()
	case InAttributeName:
		t.buf.resetAttribute()
	case BeforeAttributeValue:
		t.buf.attrValue = t.buf.attrValue[:0]
	}
	if t.state == Free && next != Free && len(t.buf.text) > 0 {
		t.sink.FlushText(t.buf.takeText())
	}
	t.state = next
}

// reprocess switches to next and hands it the current byte.
func (t *Tokenizer) reprocess(next State, c byte) {
	t.moveTo(next)
	t.step(c)
}

func (t *Tokenizer) commitTag() {
	if t.closing {
		t.sink.CloseElement()
		return
	}
	t.sink.OpenElement(string(t.buf.tagName), t.buf.takeAttributes())
}

func (t *Tokenizer) step(c byte) {
	switch t.state {
	case Free:
		if c == '<' {
			t.moveTo(BeforeTagName)
			return
		}
		t.buf.text = append(t.buf.text, c)

	case BeforeTagName:
		switch {
		case c == '/':
			t.closing = true
		case c == '>':
			t.moveTo(Free)
		case isLetter(c):
			t.reprocess(InTagName, c)
		}

	case InTagName:
		switch {
		case isSpace(c):
			t.moveTo(InAttributeList)
		case c == '>':
			t.commitTag()
			t.moveTo(Free)
		default:
			t.buf.tagName = append(t.buf.tagName, c)
		}

	case InAttributeList:
		switch {
		case c == '>':
			t.commitTag()
			t.moveTo(Free)
		case isLetter(c):
			t.reprocess(InAttributeName, c)
		}

	case InAttributeName:
		switch {
		case isAttributeNameByte(c):
			t.buf.attrName = append(t.buf.attrName, c)
		case isSpace(c):
			t.buf.commitAttribute()
		case c == '>':
			t.buf.commitAttribute()
			t.commitTag()
			t.moveTo(Free)
		case c == '=':
			t.moveTo(BeforeAttributeValue)
		}

	case BeforeAttributeValue:
		switch {
		case c == '\'':
			t.moveTo(InAttributeValueSingleQuoted)
		case c == '"':
			t.moveTo(InAttributeValueDoubleQuoted)
		case c == '>':
			t.commitTag()
			t.moveTo(Free)
		case isSpace(c):
			t.buf.commitAttribute()
			t.moveTo(InAttributeList)
		case t.opts.UnquotedValues:
			t.reprocess(InAttributeValueUnquoted, c)
		}

	case InAttributeValueSingleQuoted:
		t.quotedValue(c, '\'')

	case InAttributeValueDoubleQuoted:
		t.quotedValue(c, '"')

	case InAttributeValueUnquoted:
		switch {
		case isSpace(c):
			t.buf.commitAttribute()
			t.moveTo(InAttributeList)
		case c == '>':
			t.buf.commitAttribute()
			t.commitTag()
			t.moveTo(Free)
		default:
			t.buf.attrValue = append(t.buf.attrValue, c)
		}

	default:
		panic(fmt.Errorf("lexer: unhandled state %v: %w", t.state, domain.ErrInvariantViolation))
	}
}

func (t *Tokenizer) quotedValue(c, quote byte) {
	if c == quote {
		t.buf.commitAttribute()
		t.moveTo(InAttributeList)
		return
	}
	t.buf.attrValue = append(t.buf.attrValue, c)
}
