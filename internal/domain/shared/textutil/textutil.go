// Package textutil provides text normalization helpers for carrier payloads.
// Carrier picking APIs reject or mangle accented characters, so free-text
// fields are reduced to their unaccented ASCII-compatible form before they
// are transmitted.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unaccenter decomposes characters and drops the combining marks, so
// "señaló" becomes "senalo". Built once; transform.Chain values are safe
// for concurrent use through Transformer.
var unaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Unaccent returns s with all diacritical marks removed. Input that cannot
// be transformed is returned unchanged rather than partially mangled.
func Unaccent(s string) string {
	out, _, err := transform.String(unaccenter, s)
	if err != nil {
		return s
	}
	return out
}

// Unspaces removes all whitespace from s. Phone numbers are commonly stored
// with grouping spaces that carrier APIs do not accept.
func Unspaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
