package typemap

import (
	"fmt"
	"strings"

	"mrm2dfdl/internal/match"
)

// maxSuggestions bounds the "did you mean" list on resolution errors.
const maxSuggestions = 3

// UnresolvedTypeError reports a declared type with no table entry and no
// override configured. It is fatal to the conversion run.
type UnresolvedTypeError struct {
	// Type is the declared source type.
	Type string
	// FieldPath locates the field declaring it, when known.
	FieldPath string
	// Suggestions are similar table entries.
	Suggestions []string
}

func (e *UnresolvedTypeError) Error() string {
	var b strings.Builder

	if e.FieldPath != "" {
		b.WriteString(e.FieldPath)
		b.WriteString(": ")
	}

	fmt.Fprintf(&b, "no mapping found for MRM data type %q", e.Type)

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(e.Suggestions, ", "))
		b.WriteString("?)")
	}

	return b.String()
}

// AtField returns a copy of e located at path.
func (e *UnresolvedTypeError) AtField(path string) *UnresolvedTypeError {
	c := *e
	c.FieldPath = path

	return &c
}

// Resolver resolves declared types against a Table with an optional fallback.
type Resolver struct {
	table    *Table
	override string
}

// NewResolver creates a Resolver. An empty override means unmapped types fail.
func NewResolver(table *Table, override string) *Resolver {
	return &Resolver{table: table, override: override}
}

// Table returns the resolver's table.
func (r *Resolver) Table() *Table {
	return r.table
}

// Override returns the fallback type, or "" when none is configured.
func (r *Resolver) Override() string {
	return r.override
}

// Resolve maps declared to its target type.
func (r *Resolver) Resolve(declared string) (string, error) {
	if target, ok := r.table.Lookup(declared); ok {
		return target, nil
	}

	if r.override != "" {
		return r.override, nil
	}

	return "", r.unresolved(declared)
}

func (r *Resolver) unresolved(declared string) *UnresolvedTypeError {
	suggestions := match.Suggest(declared, r.table.Names(), match.DefaultMinScore, maxSuggestions)

	return &UnresolvedTypeError{
		Type:        declared,
		Suggestions: suggestions.Names(),
	}
}
