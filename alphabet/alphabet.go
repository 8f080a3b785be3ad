// Package alphabet holds the A-Z rank tables and the input normalization
// shared by every letter-based cipher in the toolkit.
package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of letters in the base alphabet.
const Size = 26

// Upper is the base alphabet in rank order, A=0 through Z=25.
const Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// stripMarks decomposes accented characters and drops the combining marks,
// so É becomes E and ç becomes c before the A-Z filter runs.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize uppercases raw, folds accented characters to their base Latin
// letter and deletes everything outside A-Z. Empty input yields empty
// output; there are no error conditions. The result is lossy on purpose:
// spaces, digits and punctuation do not survive.
func Normalize(raw string) string {
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToUpper(folded) {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// NormalizeWords is Normalize with word boundaries kept: each whitespace
// separated word is normalized on its own and empty words are dropped.
// Word-delimited encodings (Morse, NATO, Navajo) need this because plain
// Normalize erases spaces.
func NormalizeWords(raw string) []string {
	var words []string
	for _, w := range strings.Fields(raw) {
		if n := Normalize(w); n != "" {
			words = append(words, n)
		}
	}
	return words
}

// Index returns the 0-based rank of an uppercase letter, A=0 through Z=25.
func Index(c byte) int { return int(c - 'A') }

// Letter returns the uppercase letter with the given rank, reduced mod 26.
// Negative values wrap.
func Letter(i int) byte {
	return 'A' + byte(((i%Size)+Size)%Size)
}

// IsUpper reports whether c is an uppercase A-Z letter.
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
