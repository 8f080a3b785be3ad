// Package grid builds the keyed substitution tables used by the polygraphic
// and fractionation ciphers: 5x5 and 6x6 squares and the 3x3x3 trifid cube.
//
// A table is fully determined by its key and base alphabet: the key's
// characters in first-occurrence order followed by the unused remainder of
// the alphabet. Tables are built fresh per call and immutable afterwards.
package grid

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

const (
	// Alphabet25 is the I/J-merged alphabet of the Playfair family, ADFGX,
	// polybius squares and digrafid.
	Alphabet25 = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

	// Alphabet36 is the letters-plus-digits alphabet of ADFGVX.
	Alphabet36 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Alphabet27 is the trifid alphabet; + fills the 27th cell of the cube.
	Alphabet27 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ+"
)

// Keyed returns the key's characters in first-occurrence order followed by
// the rest of base, as a pure fold with no duplicates. Key characters are
// uppercased and accent-folded first and anything outside base is dropped;
// when base has no J the key's Js fold to I.
func Keyed(key, base string) string {
	mergeJ := !strings.ContainsRune(base, 'J')
	seen := make(map[byte]bool, len(base))
	out := make([]byte, 0, len(base))
	take := func(c byte) {
		if c == 'J' && mergeJ {
			c = 'I'
		}
		if strings.IndexByte(base, c) >= 0 && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, r := range strings.ToUpper(key) {
		if r < 128 {
			take(byte(r))
			continue
		}
		// same accent folding as transposition keywords
		folded := alphabet.Normalize(string(r))
		for i := 0; i < len(folded); i++ {
			take(folded[i])
		}
	}
	for i := 0; i < len(base); i++ {
		take(base[i])
	}
	return string(out)
}

// Square is a keyed side-by-side substitution table with a forward map
// (letter to row/column) and inverse map (row/column to letter).
type Square struct {
	Side  int
	cells string
	pos   map[byte][2]int
}

// NewSquare builds a side*side table over base from key. base must have
// exactly side*side characters.
func NewSquare(key, base string, side int) *Square {
	cells := Keyed(key, base)
	sq := &Square{Side: side, cells: cells, pos: make(map[byte][2]int, len(cells))}
	for i := 0; i < len(cells); i++ {
		sq.pos[cells[i]] = [2]int{i / side, i % side}
	}
	return sq
}

// At returns the character at row r, column c. Coordinates wrap mod Side,
// which is what the Playfair shift rules want.
func (sq *Square) At(r, c int) byte {
	r = ((r % sq.Side) + sq.Side) % sq.Side
	c = ((c % sq.Side) + sq.Side) % sq.Side
	return sq.cells[r*sq.Side+c]
}

// Find returns the row and column of ch, and whether it is in the table.
func (sq *Square) Find(ch byte) (r, c int, ok bool) {
	p, ok := sq.pos[ch]
	return p[0], p[1], ok
}

// Cube is the 3x3x3 trifid table: 27 symbols addressed by three trits.
type Cube struct {
	cells string
	pos   map[byte][3]int
}

// NewCube builds the trifid cube over Alphabet27 from key.
func NewCube(key string) *Cube {
	cells := Keyed(key, Alphabet27)
	cu := &Cube{cells: cells, pos: make(map[byte][3]int, len(cells))}
	for i := 0; i < len(cells); i++ {
		cu.pos[cells[i]] = [3]int{i / 9, (i / 3) % 3, i % 3}
	}
	return cu
}

// At returns the symbol at layer l, row r, column c.
func (cu *Cube) At(l, r, c int) byte { return cu.cells[l*9+r*3+c] }

// Find returns the three coordinates of ch, and whether it is in the cube.
func (cu *Cube) Find(ch byte) (l, r, c int, ok bool) {
	p, ok := cu.pos[ch]
	return p[0], p[1], p[2], ok
}

// MergeJ rewrites J to I in already-normalized text, matching Alphabet25.
func MergeJ(s string) string { return strings.ReplaceAll(s, "J", "I") }

// NormalizeAlnum is alphabet.Normalize but keeping digits, for the 6x6
// ADFGVX alphabet.
func NormalizeAlnum(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteByte(byte(r))
		default:
			if n := alphabet.Normalize(string(r)); n != "" {
				b.WriteString(n)
			}
		}
	}
	return b.String()
}
