package dfdl

import (
	"errors"
	"fmt"

	"mrm2dfdl/internal/msgset"
	"mrm2dfdl/internal/typemap"
)

// Converter turns message set nodes into DFDL nodes.
type Converter struct {
	resolver *typemap.Resolver
	ctx      Context
}

// NewConverter creates a Converter resolving types against table, falling
// back to ctx.TypeOverride.
func NewConverter(table *typemap.Table, ctx Context) *Converter {
	return &Converter{
		resolver: typemap.NewResolver(table, ctx.TypeOverride),
		ctx:      ctx,
	}
}

// Convert converts n and its subtree and appends the result to parent.
// On error nothing is appended for the failing field, and the caller must
// discard the partially built tree.
func (c *Converter) Convert(n msgset.Node, parent *Node) error {
	return c.convert(n, parent, n.NodeName())
}

// ConvertRoot converts the top-level node, applying the root element name
// override when one is configured.
func (c *Converter) ConvertRoot(n msgset.Node, parent *Node) error {
	name := c.ctx.RootElementName
	if name == "" {
		return c.Convert(n, parent)
	}

	switch n := n.(type) {
	case *msgset.Field:
		el, err := c.element(n, name, name)
		if err != nil {
			return err
		}

		parent.Append(el)

	case *msgset.Group:
		el := c.newElement(name)
		el.Append(SourceAnnotation(LabelSourceElement, n))

		if err := c.group(n, el, name); err != nil {
			return err
		}

		parent.Append(el)

	default:
		return fmt.Errorf("%s: unsupported node kind %s", name, n.Kind())
	}

	return nil
}

func (c *Converter) convert(n msgset.Node, parent *Node, path string) error {
	switch n := n.(type) {
	case *msgset.Field:
		el, err := c.element(n, n.Name, path)
		if err != nil {
			return err
		}

		parent.Append(el)

		return nil

	case *msgset.Group:
		return c.group(n, parent, path)
	}

	return fmt.Errorf("%s: unsupported node kind %s", path, n.Kind())
}

// group converts a group's children either into a new named complexType
// (named mode) or straight into parent (inline mode).
func (c *Converter) group(g *msgset.Group, parent *Node, path string) error {
	container := parent
	if c.ctx.NamedComplexTypes() {
		container = NewNode(PrefixDFDL, TagComplexType).SetAttr("name", c.ctx.ComplexTypeName)
	}

	for _, child := range g.Children {
		if err := c.convert(child, container, path+"/"+child.NodeName()); err != nil {
			return err
		}
	}

	if container != parent {
		parent.Append(container)
	}

	return nil
}

// element builds the element for f under the given name.
func (c *Converter) element(f *msgset.Field, name, path string) (*Node, error) {
	typ, err := c.resolver.Resolve(f.DeclaredType)
	if err != nil {
		var ute *typemap.UnresolvedTypeError
		if errors.As(err, &ute) {
			return nil, ute.AtField(path)
		}

		return nil, err
	}

	el := c.newElement(name).SetAttr("type", typ)

	if f.MinOccurs.Set {
		el.SetAttr("minOccurs", f.MinOccurs.Value)
	}

	if f.MaxOccurs.Set {
		el.SetAttr("maxOccurs", f.MaxOccurs.Value)
	}

	el.Append(SourceAnnotation(LabelSourceElement, f))

	return el, nil
}

func (c *Converter) newElement(name string) *Node {
	el := NewNode(PrefixDFDL, TagElement).SetAttr("name", name)

	if c.ctx.NamespacePrefix != "" {
		el.SetAttr("xmlns:"+c.ctx.NamespacePrefix, c.ctx.TargetNamespace)
	}

	return el
}
