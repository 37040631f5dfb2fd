// Package dfdl converts a message set tree into a DFDL schema tree.
//
// Conversion pipeline:
//  1. Assemble builds the document root: identity attributes, the global
//     parser/output properties and the provenance annotations.
//  2. The Converter walks the message set depth-first. A Field becomes an
//     element with a resolved type; a Group either becomes a named
//     complexType (named mode) or is flattened into its parent (inline mode).
//  3. Any unresolved type aborts the run; no tree is returned.
//
// The produced Node tree is a plain value: rendering it to XML is the job of
// the render package.
package dfdl
