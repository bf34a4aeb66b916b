package lexer

import "fmt"

// State is a lexical state of the tokenizer.
type State uint8

const (
	// Free is raw text outside any tag markup.
	Free State = iota
	BeforeTagName
	InTagName
	InAttributeList
	InAttributeName
	BeforeAttributeValue
	InAttributeValueUnquoted
	InAttributeValueSingleQuoted
	InAttributeValueDoubleQuoted
)

var stateNames = [...]string{
	Free:                         "Free",
	BeforeTagName:                "BeforeTagName",
	InTagName:                    "InTagName",
	InAttributeList:              "InAttributeList",
	InAttributeName:              "InAttributeName",
	BeforeAttributeValue:         "BeforeAttributeValue",
	InAttributeValueUnquoted:     "InAttributeValueUnquoted",
	InAttributeValueSingleQuoted: "InAttributeValueSingleQuoted",
	InAttributeValueDoubleQuoted: "InAttributeValueDoubleQuoted",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Byte classes. ASCII only: bytes of multi-byte UTF-8 sequences belong to none of them.

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAttributeNameByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '-'
}
