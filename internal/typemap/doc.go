// Package typemap resolves declared MRM field types to DFDL target types.
//
// A Table is a read-only name-to-name mapping built once per run: the
// built-in defaults, optionally layered with a YAML mapping file. A Resolver
// pairs a Table with an optional override type used for names the table
// does not know.
//
// # Mapping file
//
//	version: "1"
//	# Drop the built-in entries and use only the ones below.
//	replace: false
//	# Fallback for unmapped types (the command line wins over this).
//	override: xsd:string
//	types:
//	  CHAR10: xsd:string
//	  PACKED5: xsd:decimal
//
// # Resolution
//
// Lookups are exact: no prefix stripping, no case folding. An unknown name
// resolves to the override when one is set, otherwise Resolve returns an
// *UnresolvedTypeError that also carries "did you mean" suggestions.
package typemap
