// Package render writes DFDL node trees as indented XML documents.
//
// The root element carries the dfdl and xsd namespace bindings. Attributes
// are written in a fixed order (name, type, minOccurs, maxOccurs, then the
// rest sorted) so that equal trees render to equal bytes.
package render
