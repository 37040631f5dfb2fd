// Package diagnostic provides structured errors, warnings and infos
// collected while auditing a message set against a type table.
//
// Key capabilities:
//   - Unresolved type errors with "did you mean" suggestions
//   - Override fallback warnings
//   - Summary infos
package diagnostic
