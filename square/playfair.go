// Package square implements the 5x5-grid ciphers: playfair, two-square,
// three-square, four-square, polybius and nihilist.
package square

import (
	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
)

func checkKeyword(name, key string) error {
	if alphabet.Normalize(key) == "" {
		return errors.Wrapf(cryptarch.ErrInvalidKeyValue, "%s: keyword has no letters", name)
	}
	return nil
}

// playfairPrepare normalizes, merges J into I, inserts an X filler between
// identical adjacent letters of a digraph (repeatedly, so runs are handled)
// and pads a trailing odd letter with X.
func playfairPrepare(text string) string {
	s := grid.MergeJ(alphabet.Normalize(text))
	out := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); {
		out = append(out, s[i])
		switch {
		case i+1 >= len(s):
			out = append(out, 'X')
			i++
		case s[i+1] == s[i]:
			out = append(out, 'X')
			i++
		default:
			out = append(out, s[i+1])
			i += 2
		}
	}
	return string(out)
}

func playfairPair(sq *grid.Square, a, b byte, dir int) (byte, byte) {
	ra, ca, _ := sq.Find(a)
	rb, cb, _ := sq.Find(b)
	switch {
	case ra == rb:
		return sq.At(ra, ca+dir), sq.At(rb, cb+dir)
	case ca == cb:
		return sq.At(ra+dir, ca), sq.At(rb+dir, cb)
	default:
		return sq.At(ra, cb), sq.At(rb, ca)
	}
}

// PlayfairEncrypt applies the digraph rules over a single keyed 5x5 grid:
// same row shifts right, same column shifts down, otherwise the rectangle
// corners swap.
func PlayfairEncrypt(text, key string) (string, error) {
	if err := checkKeyword("playfair", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	s := playfairPrepare(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		out[i], out[i+1] = playfairPair(sq, s[i], s[i+1], 1)
	}
	return string(out), nil
}

// PlayfairDecrypt mirrors encryption with left/up shifts; the rectangle
// rule is its own inverse. Filler X letters inserted by encryption stay in
// the output.
func PlayfairDecrypt(text, key string) (string, error) {
	if err := checkKeyword("playfair", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	s := grid.MergeJ(alphabet.Normalize(text))
	if len(s)%2 == 1 {
		s += "X"
	}
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		out[i], out[i+1] = playfairPair(sq, s[i], s[i+1], -1)
	}
	return string(out), nil
}
