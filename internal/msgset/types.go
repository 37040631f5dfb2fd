package msgset

import (
	"mrm2dfdl/internal/common"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindField Kind = iota
	KindGroup
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindGroup:
		return "group"
	default:
		return common.UnknownStr
	}
}

// Node is a message set tree node. It is implemented only by *Field and *Group.
type Node interface {
	// Kind reports the node variant.
	Kind() Kind
	// NodeName returns the declared name.
	NodeName() string

	sealed()
}

// Occurs is an optional occurrence bound. The value is kept verbatim and is
// never interpreted numerically.
type Occurs struct {
	Value string
	Set   bool
}

// OccursOf returns a set Occurs holding v.
func OccursOf(v string) Occurs {
	return Occurs{Value: v, Set: true}
}

// String returns the raw value, or "" when unset.
func (o Occurs) String() string {
	return o.Value
}

// Field is a leaf declaration.
type Field struct {
	Name         string
	DeclaredType string
	MinOccurs    Occurs
	MaxOccurs    Occurs
}

// Group is an ordered container of Fields and Groups.
type Group struct {
	Name     string
	Children []Node
}

func (*Field) Kind() Kind { return KindField }
func (*Group) Kind() Kind { return KindGroup }

func (f *Field) NodeName() string { return f.Name }
func (g *Group) NodeName() string { return g.Name }

func (*Field) sealed() {}
func (*Group) sealed() {}

// Walk visits n and its descendants depth-first in document order. The path
// passed to fn is the slash-separated chain of names from the root to the
// visited node. Returning false from fn skips the node's children.
func Walk(n Node, fn func(path string, n Node) bool) {
	walk(n, "", fn)
}

func walk(n Node, prefix string, fn func(path string, n Node) bool) {
	path := n.NodeName()
	if prefix != "" {
		path = prefix + "/" + path
	}

	if !fn(path, n) {
		return
	}

	if g, ok := n.(*Group); ok {
		for _, child := range g.Children {
			walk(child, path, fn)
		}
	}
}

// CountFields returns the number of Field nodes in the tree rooted at n.
func CountFields(n Node) int {
	count := 0

	Walk(n, func(_ string, n Node) bool {
		if n.Kind() == KindField {
			count++
		}

		return true
	})

	return count
}
