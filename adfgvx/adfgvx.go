// Package adfgvx implements the two-stage ADFGX and ADFGVX ciphers: a
// keyed-grid substitution into coordinate letters followed by columnar
// transposition under a second key.
package adfgvx

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
	"github.com/cryptarch/cryptarch/transpose"
)

const (
	coords5 = "ADFGX"
	coords6 = "ADFGVX"
)

func transKey(key string) (string, error) {
	kw := alphabet.Normalize(key)
	if kw == "" {
		return "", errors.Wrap(cryptarch.ErrInvalidKeyValue, "adfgvx: transposition key has no letters")
	}
	return kw, nil
}

// substitute maps each grid character to its two coordinate letters.
func substitute(sq *grid.Square, coords, text string) string {
	var b strings.Builder
	b.Grow(2 * len(text))
	for i := 0; i < len(text); i++ {
		r, c, ok := sq.Find(text[i])
		if !ok {
			continue
		}
		b.WriteByte(coords[r])
		b.WriteByte(coords[c])
	}
	return b.String()
}

// unsubstitute maps coordinate-letter pairs back through the grid. Pairs
// with a letter outside the coordinate alphabet are dropped; a trailing
// odd letter is ignored.
func unsubstitute(sq *grid.Square, coords, stream string) string {
	var b strings.Builder
	for i := 0; i+1 < len(stream); i += 2 {
		r := strings.IndexByte(coords, stream[i])
		c := strings.IndexByte(coords, stream[i+1])
		if r < 0 || c < 0 {
			continue
		}
		b.WriteByte(sq.At(r, c))
	}
	return b.String()
}

// EncryptADFGX substitutes through a keyed 5x5 grid (I/J merged) and
// transposes the coordinate stream.
func EncryptADFGX(text, gridKey, transpositionKey string) (string, error) {
	tk, err := transKey(transpositionKey)
	if err != nil {
		return "", err
	}
	sq := grid.NewSquare(gridKey, grid.Alphabet25, 5)
	inter := substitute(sq, coords5, grid.MergeJ(alphabet.Normalize(text)))
	return transpose.Encrypt(inter, tk), nil
}

// DecryptADFGX inverts the transposition to recover the coordinate stream,
// then the substitution.
func DecryptADFGX(text, gridKey, transpositionKey string) (string, error) {
	tk, err := transKey(transpositionKey)
	if err != nil {
		return "", err
	}
	sq := grid.NewSquare(gridKey, grid.Alphabet25, 5)
	inter := transpose.Decrypt(strings.ToUpper(strings.TrimSpace(text)), tk)
	return unsubstitute(sq, coords5, inter), nil
}

// EncryptADFGVX substitutes through a keyed 6x6 letters-plus-digits grid
// and transposes the coordinate stream.
func EncryptADFGVX(text, gridKey, transpositionKey string) (string, error) {
	tk, err := transKey(transpositionKey)
	if err != nil {
		return "", err
	}
	sq := grid.NewSquare(gridKey, grid.Alphabet36, 6)
	inter := substitute(sq, coords6, grid.NormalizeAlnum(text))
	return transpose.Encrypt(inter, tk), nil
}

// DecryptADFGVX inverts EncryptADFGVX.
func DecryptADFGVX(text, gridKey, transpositionKey string) (string, error) {
	tk, err := transKey(transpositionKey)
	if err != nil {
		return "", err
	}
	sq := grid.NewSquare(gridKey, grid.Alphabet36, 6)
	inter := transpose.Decrypt(strings.ToUpper(strings.TrimSpace(text)), tk)
	return unsubstitute(sq, coords6, inter), nil
}
