package square

import (
	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
)

// digraphs pads normalized, J-merged text to even length with X and
// returns it ready for pairwise processing.
func digraphs(text string) string {
	s := grid.MergeJ(alphabet.Normalize(text))
	if len(s)%2 == 1 {
		s += "X"
	}
	return s
}

// TwoSquareEncrypt looks the first letter up in the first keyed grid and
// the second in the second; the output digraph is grid1 at (row1, col2)
// and grid2 at (row2, col1). Applying the same operation again restores
// the input, so decryption is the same function.
func TwoSquareEncrypt(text, key1, key2 string) (string, error) {
	if err := checkKeyword("twosquare", key1); err != nil {
		return "", err
	}
	if err := checkKeyword("twosquare", key2); err != nil {
		return "", err
	}
	g1 := grid.NewSquare(key1, grid.Alphabet25, 5)
	g2 := grid.NewSquare(key2, grid.Alphabet25, 5)
	s := digraphs(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		r1, c1, _ := g1.Find(s[i])
		r2, c2, _ := g2.Find(s[i+1])
		out[i] = g1.At(r1, c2)
		out[i+1] = g2.At(r2, c1)
	}
	return string(out), nil
}

// TwoSquareDecrypt is TwoSquareEncrypt; the cipher is self-inverse.
func TwoSquareDecrypt(text, key1, key2 string) (string, error) {
	return TwoSquareEncrypt(text, key1, key2)
}

// ThreeSquareEncrypt uses three keyed grids: the plaintext digraph is
// located in grids 1 and 2, and both ciphertext letters come from grid 3
// at the crossed coordinates. Unlike two-square this is not self-inverse.
func ThreeSquareEncrypt(text, key1, key2, key3 string) (string, error) {
	for _, k := range []string{key1, key2, key3} {
		if err := checkKeyword("threesquare", k); err != nil {
			return "", err
		}
	}
	g1 := grid.NewSquare(key1, grid.Alphabet25, 5)
	g2 := grid.NewSquare(key2, grid.Alphabet25, 5)
	g3 := grid.NewSquare(key3, grid.Alphabet25, 5)
	s := digraphs(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		r1, c1, _ := g1.Find(s[i])
		r2, c2, _ := g2.Find(s[i+1])
		out[i] = g3.At(r1, c2)
		out[i+1] = g3.At(r2, c1)
	}
	return string(out), nil
}

// ThreeSquareDecrypt locates the ciphertext letters in grid 3 and maps the
// recovered coordinates back through grids 1 and 2.
func ThreeSquareDecrypt(text, key1, key2, key3 string) (string, error) {
	for _, k := range []string{key1, key2, key3} {
		if err := checkKeyword("threesquare", k); err != nil {
			return "", err
		}
	}
	g1 := grid.NewSquare(key1, grid.Alphabet25, 5)
	g2 := grid.NewSquare(key2, grid.Alphabet25, 5)
	g3 := grid.NewSquare(key3, grid.Alphabet25, 5)
	s := digraphs(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		r1, c2, _ := g3.Find(s[i])
		r2, c1, _ := g3.Find(s[i+1])
		out[i] = g1.At(r1, c1)
		out[i+1] = g2.At(r2, c2)
	}
	return string(out), nil
}

// FourSquareEncrypt places the plain alphabet in the top-left and
// bottom-right quadrants and the two keyed grids top-right and
// bottom-left: C1 = key1[r1][c2], C2 = key2[r2][c1].
func FourSquareEncrypt(text, key1, key2 string) (string, error) {
	if err := checkKeyword("foursquare", key1); err != nil {
		return "", err
	}
	if err := checkKeyword("foursquare", key2); err != nil {
		return "", err
	}
	plain := grid.NewSquare("", grid.Alphabet25, 5)
	k1 := grid.NewSquare(key1, grid.Alphabet25, 5)
	k2 := grid.NewSquare(key2, grid.Alphabet25, 5)
	s := digraphs(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		r1, c1, _ := plain.Find(s[i])
		r2, c2, _ := plain.Find(s[i+1])
		out[i] = k1.At(r1, c2)
		out[i+1] = k2.At(r2, c1)
	}
	return string(out), nil
}

// FourSquareDecrypt looks the ciphertext up in the keyed grids and the
// plaintext comes back out of the plain grids, the inverse direction of
// encryption.
func FourSquareDecrypt(text, key1, key2 string) (string, error) {
	if err := checkKeyword("foursquare", key1); err != nil {
		return "", err
	}
	if err := checkKeyword("foursquare", key2); err != nil {
		return "", err
	}
	plain := grid.NewSquare("", grid.Alphabet25, 5)
	k1 := grid.NewSquare(key1, grid.Alphabet25, 5)
	k2 := grid.NewSquare(key2, grid.Alphabet25, 5)
	s := digraphs(text)
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		r1, c2, _ := k1.Find(s[i])
		r2, c1, _ := k2.Find(s[i+1])
		out[i] = plain.At(r1, c1)
		out[i+1] = plain.At(r2, c2)
	}
	return string(out), nil
}
