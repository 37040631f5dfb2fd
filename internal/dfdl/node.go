package dfdl

// XML namespaces used in generated documents.
const (
	NamespaceDFDL = "http://www.ogf.org/dfdl/dfdl-1.0/"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema"
)

// Namespace prefixes bound on the document root.
const (
	PrefixDFDL = "dfdl"
	PrefixXSD  = "xsd"
)

// Tag names of generated nodes.
const (
	TagModel         = "model"
	TagElement       = "element"
	TagComplexType   = "complexType"
	TagProperty      = "property"
	TagAnnotation    = "annotation"
	TagDocumentation = "documentation"
	TagAppInfo       = "appinfo"
)

// Node is a DFDL document node. A node owns its children; trees never share
// nodes.
type Node struct {
	// Space is the namespace prefix of the tag.
	Space string
	// Tag is the local tag name.
	Tag string
	// Attrs maps attribute names to values. Order carries no meaning.
	Attrs map[string]string
	// Text is character data, used by annotation parts.
	Text string
	// Children are ordered as in the source.
	Children []*Node
}

// NewNode creates an empty node.
func NewNode(space, tag string) *Node {
	return &Node{Space: space, Tag: tag, Attrs: map[string]string{}}
}

// FullTag returns "space:tag", or just the tag without a space.
func (n *Node) FullTag() string {
	if n.Space == "" {
		return n.Tag
	}

	return n.Space + ":" + n.Tag
}

// SetAttr sets an attribute and returns n.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}

	n.Attrs[key] = value

	return n
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// Append adds children at the end.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// ChildrenByTag returns the direct children with the given local tag.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}

	return out
}
