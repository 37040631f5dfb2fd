package typemap

import (
	"maps"
	"slices"
	"strconv"
)

// Table maps source type names to target type names. It is never mutated
// after construction.
type Table struct {
	entries map[string]string
}

// Entry is a single table row.
type Entry struct {
	Source string
	Target string
}

// NewTable builds a table from a copy of m.
func NewTable(m map[string]string) *Table {
	return &Table{entries: maps.Clone(m)}
}

// Lookup returns the target type for source.
func (t *Table) Lookup(source string) (string, bool) {
	if t == nil {
		return "", false
	}

	target, ok := t.entries[source]

	return target, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Names returns the source type names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(t.entries))
}

// Entries returns all rows sorted by source name.
func (t *Table) Entries() []Entry {
	names := t.Names()

	out := make([]Entry, len(names))
	for i, n := range names {
		out[i] = Entry{Source: n, Target: t.entries[n]}
	}

	return out
}

// Merge returns a new table holding t's entries overlaid with other's.
func (t *Table) Merge(other *Table) *Table {
	merged := make(map[string]string, t.Len()+other.Len())

	if t != nil {
		maps.Copy(merged, t.entries)
	}

	if other != nil {
		maps.Copy(merged, other.entries)
	}

	return &Table{entries: merged}
}

// Map returns a copy of the entries.
func (t *Table) Map() map[string]string {
	if t == nil {
		return map[string]string{}
	}

	return maps.Clone(t.entries)
}

// XSD built-in simple types accepted bare, with "xs:" and with "xsd:".
var xsdBuiltins = []string{
	"string", "normalizedString", "token",
	"boolean",
	"decimal", "integer", "long", "int", "short", "byte",
	"nonNegativeInteger", "positiveInteger", "nonPositiveInteger", "negativeInteger",
	"unsignedLong", "unsignedInt", "unsignedShort", "unsignedByte",
	"float", "double",
	"date", "time", "dateTime", "duration",
	"gYear", "gYearMonth", "gMonth", "gMonthDay", "gDay",
	"hexBinary", "base64Binary",
	"anyURI",
}

// MRM logical type aliases.
var mrmAliases = map[string]string{
	"CHAR":           "xsd:string",
	"CHARACTER":      "xsd:string",
	"STRING":         "xsd:string",
	"INTEGER":        "xsd:int",
	"INT2":           "xsd:short",
	"INT4":           "xsd:int",
	"INT8":           "xsd:long",
	"DECIMAL":        "xsd:decimal",
	"PACKED_DECIMAL": "xsd:decimal",
	"ZONED_DECIMAL":  "xsd:decimal",
	"FLOAT":          "xsd:float",
	"DOUBLE":         "xsd:double",
	"BOOLEAN":        "xsd:boolean",
	"DATE":           "xsd:date",
	"TIME":           "xsd:time",
	"DATETIME":       "xsd:dateTime",
	"TIMESTAMP":      "xsd:dateTime",
	"BINARY":         "xsd:hexBinary",
	"BLOB":           "xsd:hexBinary",
}

// Fixed-width character field aliases, CHARn -> xsd:string.
var charWidths = []int{1, 2, 3, 4, 5, 8, 10, 12, 15, 16, 20, 25, 30, 32, 35, 40, 50, 64, 80, 100, 128, 255, 256}

// DefaultTable returns the built-in mapping.
func DefaultTable() *Table {
	m := make(map[string]string, len(xsdBuiltins)*3+len(mrmAliases)+len(charWidths))

	for _, name := range xsdBuiltins {
		target := "xsd:" + name
		m[name] = target
		m["xs:"+name] = target
		m["xsd:"+name] = target
	}

	maps.Copy(m, mrmAliases)

	for _, w := range charWidths {
		m["CHAR"+strconv.Itoa(w)] = "xsd:string"
	}

	return &Table{entries: m}
}
