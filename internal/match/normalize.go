package match

import (
	"strings"
	"unicode"
)

// NormalizeTypeName normalizes a type name for fuzzy comparison.
// The normalization pipeline:
// 1. Drop a namespace prefix ("xs:string" -> "string").
// 2. Tokenize CamelCase.
// 3. Case-fold to lower and strip separators (_, -, ., spaces).
//
// Digits are kept, so "CHAR10" and "CHAR12" stay distinct.
func NormalizeTypeName(s string) string {
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}

	return strings.Join(TokenizeTypeName(s), "")
}

// TokenizeTypeName splits a type name into lowercase tokens.
// Examples:
//   - "packedDecimal" -> ["packed", "decimal"]
//   - "DATE_TIME" -> ["date", "time"]
//   - "XMLString" -> ["xml", "string"]
func TokenizeTypeName(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens,
// dropping separators.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// startsToken reports whether a new token begins at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "packedDecimal", "INT4Value": lower or digit to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLString": end of an acronym
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
