package render

import (
	"fmt"
	"slices"

	"github.com/beevik/etree"

	"mrm2dfdl/internal/dfdl"
)

// indentSpaces is the indentation width of rendered documents.
const indentSpaces = 2

// leadingAttrs are written first, in this order.
var leadingAttrs = []string{"name", "type", "minOccurs", "maxOccurs"}

// Document builds an XML document for the tree rooted at root.
func Document(root *dfdl.Node) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	el := etree.NewElement(root.FullTag())
	el.CreateAttr("xmlns:"+dfdl.PrefixDFDL, dfdl.NamespaceDFDL)
	el.CreateAttr("xmlns:"+dfdl.PrefixXSD, dfdl.NamespaceXSD)
	fill(el, root)

	doc.SetRoot(el)

	return doc
}

// Bytes renders root as indented XML.
func Bytes(root *dfdl.Node) ([]byte, error) {
	doc := Document(root)
	doc.Indent(indentSpaces)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return data, nil
}

func element(n *dfdl.Node) *etree.Element {
	el := etree.NewElement(n.FullTag())
	fill(el, n)

	return el
}

func fill(el *etree.Element, n *dfdl.Node) {
	for _, key := range attrOrder(n.Attrs) {
		el.CreateAttr(key, n.Attrs[key])
	}

	if n.Text != "" {
		el.SetText(n.Text)
	}

	for _, child := range n.Children {
		el.AddChild(element(child))
	}
}

// attrOrder returns the keys of attrs in rendering order.
func attrOrder(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))

	for _, k := range leadingAttrs {
		if _, ok := attrs[k]; ok {
			keys = append(keys, k)
		}
	}

	var rest []string

	for k := range attrs {
		if !slices.Contains(leadingAttrs, k) {
			rest = append(rest, k)
		}
	}

	slices.Sort(rest)

	return append(keys, rest...)
}
