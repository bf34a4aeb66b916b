package dom

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindDocument Kind = iota + 1
	KindElement
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) IsDocument() bool { return k == KindDocument }
func (k Kind) IsElement() bool  { return k == KindElement }
func (k Kind) IsText() bool     { return k == KindText }

// IsContainer reports whether nodes of this kind may hold children.
func (k Kind) IsContainer() bool { return k == KindDocument || k == KindElement }

// Node is one of Document, *Element or Text.
type Node interface {
	Kind() Kind
	node()
}

// Document is the root variant. A Tree holds exactly one, at RootID.
type Document struct{}

func (Document) Kind() Kind { return KindDocument }
func (Document) node()      {}

// Attribute is a name/value pair as written in the start tag.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element is a tagged node. TagName is kept exactly as written (case-sensitive) and
// Attributes keep declaration order, duplicates included.
type Element struct {
	TagName    string
	Attributes []Attribute
}

func (*Element) Kind() Kind { return KindElement }
func (*Element) node()      {}

// Attr returns the value of the first attribute called name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text is verbatim character data. It never holds children.
type Text struct {
	Data string
}

func (Text) Kind() Kind { return KindText }
func (Text) node()      {}
