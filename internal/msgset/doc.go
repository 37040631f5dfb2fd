// Package msgset provides the in-memory model of an MRM message set and the
// loader that builds it from XML.
//
// A message set is a tree of two node kinds:
//   - Field: a leaf declaration with a declared type and occurrence bounds
//   - Group: an ordered container of Fields and Groups
//
// Node is a sealed interface; callers dispatch on the concrete type with a
// type switch. Nodes are immutable once loaded.
//
// # Loading rules
//
// Elements are matched by local name, so both "xs:" and "xsd:" prefixes work:
//
//	<xs:element name="A" type="CHAR10"/>   -> Field
//	<xs:element name="B"><xs:complexType>  -> Group named "B"
//	<xs:complexType name="C">              -> Group
//	<xs:sequence>, <xs:all>, <xs:choice>   -> transparent, children spliced in
//
// Everything else (annotations, attributes, documentation) is skipped.
package msgset
