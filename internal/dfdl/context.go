package dfdl

import "time"

// Context is the immutable configuration of one conversion run. It is
// built once before conversion starts and passed by value.
type Context struct {
	// ModelName is the identity of the generated document.
	ModelName string
	// TargetNamespace is set on the root and bound by NamespacePrefix.
	TargetNamespace string
	// FieldNamingConvention is an advisory label embedded as a property.
	FieldNamingConvention string
	// MaxOccursUnbounded is the threshold embedded as a property.
	MaxOccursUnbounded int
	// TypeOverride is the fallback for unmapped types; empty means none.
	TypeOverride string
	// ComplexTypeName switches groups to named mode when set.
	ComplexTypeName string
	// RootElementName renames the top-level element when set.
	RootElementName string
	// NamespacePrefix adds an xmlns:<prefix> binding to every element when set.
	NamespacePrefix string
	// SourcePath is recorded in the provenance annotations.
	SourcePath string
	// GeneratedAt is recorded in the provenance annotations.
	GeneratedAt time.Time
}

// NamedComplexTypes reports whether groups become named complex types.
func (c Context) NamedComplexTypes() bool {
	return c.ComplexTypeName != ""
}
