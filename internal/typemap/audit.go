package typemap

import (
	"fmt"

	"mrm2dfdl/internal/diagnostic"
	"mrm2dfdl/internal/msgset"
)

// Audit checks every field of the tree rooted at root against r and reports
// all problems at once, unlike a conversion run which stops at the first
// unresolved type.
func Audit(root msgset.Node, r *Resolver) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	var fields, mapped, fallback int

	msgset.Walk(root, func(path string, n msgset.Node) bool {
		f, ok := n.(*msgset.Field)
		if !ok {
			return true
		}

		fields++

		if _, ok := r.table.Lookup(f.DeclaredType); ok {
			mapped++
			return true
		}

		if r.override != "" {
			fallback++
			res.AddWarning(diagnostic.CodeOverrideFallback,
				fmt.Sprintf("type %q is not mapped, using override %q", f.DeclaredType, r.override),
				f.DeclaredType, path)

			return true
		}

		ute := r.unresolved(f.DeclaredType)
		res.AddError(diagnostic.CodeUnresolvedType,
			fmt.Sprintf("no mapping found for MRM data type %q", f.DeclaredType),
			f.DeclaredType, path, ute.Suggestions...)

		return true
	})

	res.AddInfo(diagnostic.CodeSummary,
		fmt.Sprintf("%d fields: %d mapped, %d via override, %d unresolved",
			fields, mapped, fallback, fields-mapped-fallback))

	return res
}
