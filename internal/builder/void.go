package builder

import "golang.org/x/net/html/atom"

// IsVoid reports whether name is a void element: one that is closed as soon as
// it is opened and therefore never has children. The match is case-sensitive.
func IsVoid(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}
