// Package match ranks known type names by similarity to an unmapped one, so
// that resolution errors can say "did you mean".
//
// Names are compared after normalization: the namespace prefix is dropped,
// CamelCase is tokenized and separators are removed. Similarity is the
// normalized Levenshtein score of the two normalized names.
package match
