package msgset

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Local element names recognized in a message set document.
const (
	tagElement     = "element"
	tagComplexType = "complexType"
	tagSequence    = "sequence"
	tagAll         = "all"
	tagChoice      = "choice"
)

// ErrEmptyDocument is returned when the input has no root element.
var ErrEmptyDocument = errors.New("message set has no root element")

// LoadFile loads and parses a message set file from the given path.
func LoadFile(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message set %s: %w", path, err)
	}

	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// Parse parses message set XML. The document root always becomes a Group.
func Parse(data []byte) (*Group, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse message set XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}

	name := root.SelectAttrValue("name", "")
	if name == "" {
		name = root.Tag
	}

	children, err := parseChildren(root, name)
	if err != nil {
		return nil, err
	}

	return &Group{Name: name, Children: children}, nil
}

// parseChildren converts the element children of el, splicing the contents
// of compositors into the result.
func parseChildren(el *etree.Element, path string) ([]Node, error) {
	var nodes []Node

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagSequence, tagAll, tagChoice:
			spliced, err := parseChildren(child, path)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, spliced...)

		case tagElement:
			n, err := parseElement(child, path)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, n)

		case tagComplexType:
			g, err := parseComplexType(child, path, child.SelectAttrValue("name", ""))
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, g)
		}
	}

	return nodes, nil
}

func parseElement(el *etree.Element, parent string) (Node, error) {
	name := el.SelectAttrValue("name", "")
	path := parent + "/" + name

	if name == "" {
		return nil, fmt.Errorf("%s: element without a name", parent)
	}

	if typ := el.SelectAttr("type"); typ != nil {
		return &Field{
			Name:         name,
			DeclaredType: typ.Value,
			MinOccurs:    occursAttr(el, "minOccurs"),
			MaxOccurs:    occursAttr(el, "maxOccurs"),
		}, nil
	}

	for _, child := range el.ChildElements() {
		if child.Tag == tagComplexType {
			return parseComplexType(child, path, name)
		}
	}

	return nil, fmt.Errorf("%s: element has neither a type nor an inline complexType", path)
}

func parseComplexType(el *etree.Element, parent, name string) (*Group, error) {
	path := parent + "/" + name

	children, err := parseChildren(el, path)
	if err != nil {
		return nil, err
	}

	return &Group{Name: name, Children: children}, nil
}

func occursAttr(el *etree.Element, key string) Occurs {
	if a := el.SelectAttr(key); a != nil {
		return OccursOf(a.Value)
	}

	return Occurs{}
}
