package dfdl

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrm2dfdl/internal/msgset"
	"mrm2dfdl/internal/typemap"
)

var testTable = typemap.NewTable(map[string]string{
	"CHAR10": "xsd:string",
	"CHAR20": "xsd:string",
	"INT4":   "xsd:int",
})

func accountField() *msgset.Field {
	return &msgset.Field{
		Name:         "AccountId",
		DeclaredType: "CHAR10",
		MinOccurs:    msgset.OccursOf("1"),
		MaxOccurs:    msgset.OccursOf("1"),
	}
}

func holderGroup() *msgset.Group {
	return &msgset.Group{
		Name: "Holder",
		Children: []msgset.Node{
			&msgset.Field{Name: "FirstName", DeclaredType: "CHAR20"},
			&msgset.Group{
				Name: "Contact",
				Children: []msgset.Node{
					&msgset.Field{Name: "Phone", DeclaredType: "CHAR10", MaxOccurs: msgset.OccursOf("unbounded")},
				},
			},
			&msgset.Field{Name: "Age", DeclaredType: "INT4", MinOccurs: msgset.OccursOf("0")},
		},
	}
}

func childNames(n *Node) []string {
	var names []string

	for _, c := range n.Children {
		if name, ok := c.Attr("name"); ok {
			names = append(names, c.Tag+":"+name)
		}
	}

	return names
}

func TestConvertFieldExample(t *testing.T) {
	parent := NewNode("", "root")
	field := accountField()

	err := NewConverter(testTable, Context{TargetNamespace: "urn:accounts"}).Convert(field, parent)
	require.NoError(t, err)
	require.Len(t, parent.Children, 1)

	el := parent.Children[0]
	assert.Equal(t, PrefixDFDL, el.Space)
	assert.Equal(t, TagElement, el.Tag)
	assert.Equal(t, map[string]string{
		"name":      "AccountId",
		"type":      "xsd:string",
		"minOccurs": "1",
		"maxOccurs": "1",
	}, el.Attrs)

	require.Len(t, el.Children, 1)
	label, value, ok := AnnotationParts(el.Children[0])
	require.True(t, ok)
	assert.Equal(t, LabelSourceElement, label)
	assert.Equal(t, msgset.Marshal(field), value)
}

func TestConvertOccursPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		field    *msgset.Field
		expected map[string]string
	}{
		{
			name:     "absent bounds stay absent",
			field:    &msgset.Field{Name: "A", DeclaredType: "INT4"},
			expected: map[string]string{"name": "A", "type": "xsd:int"},
		},
		{
			name:     "values copied verbatim",
			field:    &msgset.Field{Name: "A", DeclaredType: "INT4", MinOccurs: msgset.OccursOf(" 01"), MaxOccurs: msgset.OccursOf("unbounded")},
			expected: map[string]string{"name": "A", "type": "xsd:int", "minOccurs": " 01", "maxOccurs": "unbounded"},
		},
		{
			name:     "empty but present",
			field:    &msgset.Field{Name: "A", DeclaredType: "INT4", MaxOccurs: msgset.OccursOf("")},
			expected: map[string]string{"name": "A", "type": "xsd:int", "maxOccurs": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewNode("", "root")
			require.NoError(t, NewConverter(testTable, Context{}).Convert(tt.field, parent))
			assert.Equal(t, tt.expected, parent.Children[0].Attrs)
		})
	}
}

func TestConvertNamespacePrefix(t *testing.T) {
	parent := NewNode("", "root")
	ctx := Context{TargetNamespace: "urn:accounts", NamespacePrefix: "ex"}

	require.NoError(t, NewConverter(testTable, ctx).Convert(holderGroup(), parent))

	var count int

	var visit func(n *Node)
	visit = func(n *Node) {
		if n.Tag == TagElement {
			count++

			ns, ok := n.Attr("xmlns:ex")
			assert.True(t, ok, spew.Sdump(n.Attrs))
			assert.Equal(t, "urn:accounts", ns)
		}

		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(parent)

	assert.Equal(t, 3, count)
}

func TestConvertInlineMode(t *testing.T) {
	parent := NewNode("", "root")

	require.NoError(t, NewConverter(testTable, Context{}).Convert(holderGroup(), parent))

	// No complexType level, nested group flattened too
	assert.Equal(t, []string{"element:FirstName", "element:Phone", "element:Age"}, childNames(parent))
	assert.Empty(t, parent.ChildrenByTag(TagComplexType))
}

func TestConvertNamedMode(t *testing.T) {
	parent := NewNode("", "root")

	require.NoError(t, NewConverter(testTable, Context{ComplexTypeName: "HolderType"}).Convert(holderGroup(), parent))

	require.Len(t, parent.Children, 1)
	ct := parent.Children[0]
	assert.Equal(t, TagComplexType, ct.Tag)
	assert.Equal(t, map[string]string{"name": "HolderType"}, ct.Attrs)
	assert.Equal(t, []string{"element:FirstName", "complexType:HolderType", "element:Age"}, childNames(ct))

	nested := ct.Children[1]
	assert.Equal(t, []string{"element:Phone"}, childNames(nested))
}

func TestConvertPreservesOrder(t *testing.T) {
	names := []string{"Z", "A", "M", "B", "Y"}

	g := &msgset.Group{Name: "G"}
	for _, n := range names {
		g.Children = append(g.Children, &msgset.Field{Name: n, DeclaredType: "INT4"})
	}

	for _, ctx := range []Context{{}, {ComplexTypeName: "T"}} {
		parent := NewNode("", "root")
		require.NoError(t, NewConverter(testTable, ctx).Convert(g, parent))

		container := parent
		if ctx.NamedComplexTypes() {
			container = parent.Children[0]
		}

		var got []string
		for _, c := range container.Children {
			got = append(got, c.Attrs["name"])
		}

		assert.Equal(t, names, got)
	}
}

func TestConvertUnresolvedType(t *testing.T) {
	g := holderGroup()
	g.Children = append(g.Children, &msgset.Field{Name: "Photo", DeclaredType: "CHAR12"})

	err := NewConverter(testTable, Context{}).Convert(g, NewNode("", "root"))
	require.Error(t, err)

	var ute *typemap.UnresolvedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "CHAR12", ute.Type)
	assert.Equal(t, "Holder/Photo", ute.FieldPath)
	assert.Contains(t, ute.Suggestions, "CHAR10")
}

func TestConvertUnresolvedTypeNamedModeAppendsNothing(t *testing.T) {
	g := &msgset.Group{Name: "G", Children: []msgset.Node{
		&msgset.Field{Name: "Ok", DeclaredType: "INT4"},
		&msgset.Field{Name: "Bad", DeclaredType: "NOPE"},
	}}

	parent := NewNode("", "root")
	err := NewConverter(testTable, Context{ComplexTypeName: "T"}).Convert(g, parent)

	require.Error(t, err)
	assert.Empty(t, parent.Children)
}

func TestConvertOverride(t *testing.T) {
	parent := NewNode("", "root")
	field := &msgset.Field{Name: "Photo", DeclaredType: "IMAGE"}

	require.NoError(t, NewConverter(testTable, Context{TypeOverride: "xsd:hexBinary"}).Convert(field, parent))
	assert.Equal(t, "xsd:hexBinary", parent.Children[0].Attrs["type"])
}
