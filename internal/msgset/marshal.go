package msgset

import (
	"github.com/beevik/etree"
)

// marshalPrefix is the namespace prefix used for canonical output.
const marshalPrefix = "xs"

// Marshal renders n and its subtree as canonical XML text: a fixed "xs"
// prefix, attributes in name/type/minOccurs/maxOccurs order, explicit end
// tags and no indentation. Equal trees always produce equal text.
func Marshal(n Node) string {
	doc := etree.NewDocument()
	doc.SetRoot(element(n))

	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true

	// Writing to an in-memory buffer cannot fail.
	s, _ := doc.WriteToString()

	return s
}

func element(n Node) *etree.Element {
	switch n := n.(type) {
	case *Field:
		el := etree.NewElement(marshalPrefix + ":" + tagElement)
		el.CreateAttr("name", n.Name)
		el.CreateAttr("type", n.DeclaredType)

		if n.MinOccurs.Set {
			el.CreateAttr("minOccurs", n.MinOccurs.Value)
		}

		if n.MaxOccurs.Set {
			el.CreateAttr("maxOccurs", n.MaxOccurs.Value)
		}

		return el

	case *Group:
		el := etree.NewElement(marshalPrefix + ":" + tagComplexType)
		if n.Name != "" {
			el.CreateAttr("name", n.Name)
		}

		for _, child := range n.Children {
			el.AddChild(element(child))
		}

		return el
	}

	return etree.NewElement(marshalPrefix + ":" + tagElement)
}
