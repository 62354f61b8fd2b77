// Package value provides the closed tagged union over int, float64, string
// and bool used for argument defaults and resolved values. Payloads are
// stored as cty values; a kind tag keeps Int and Float distinct even though
// cty unifies both as Number. Accessors fail loudly on a tag mismatch
// rather than coercing.
package value
