package square

import (
	"strconv"
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
)

// PolybiusEncrypt replaces each letter with its 1-based row/column digits
// in a keyed 5x5 square, space-separated: A in an unkeyed square is "11".
// An empty key means the plain alphabetical square.
func PolybiusEncrypt(text, key string) (string, error) {
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	s := grid.MergeJ(alphabet.Normalize(text))
	codes := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		r, c, _ := sq.Find(s[i])
		codes = append(codes, strconv.Itoa((r+1)*10+c+1))
	}
	return strings.Join(codes, " "), nil
}

// PolybiusDecrypt parses the space-separated digit pairs back through the
// square. Malformed or out-of-range pairs are silently dropped.
func PolybiusDecrypt(text, key string) (string, error) {
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		r, c := n/10-1, n%10-1
		if r < 0 || r > 4 || c < 0 || c > 4 {
			continue
		}
		b.WriteByte(sq.At(r, c))
	}
	return b.String(), nil
}

// nihilistCodes returns the polybius codes of s over an unkeyed square.
func nihilistCodes(sq *grid.Square, s string) []int {
	codes := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		r, c, _ := sq.Find(s[i])
		codes[i] = (r+1)*10 + c + 1
	}
	return codes
}

// NihilistEncrypt adds the repeating keyword's polybius codes to the
// plaintext's codes over an unkeyed square and emits space-separated
// decimal sums.
func NihilistEncrypt(text, key string) (string, error) {
	if err := checkKeyword("nihilist", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare("", grid.Alphabet25, 5)
	kc := nihilistCodes(sq, grid.MergeJ(alphabet.Normalize(key)))
	pc := nihilistCodes(sq, grid.MergeJ(alphabet.Normalize(text)))
	out := make([]string, len(pc))
	for i, p := range pc {
		out[i] = strconv.Itoa(p + kc[i%len(kc)])
	}
	return strings.Join(out, " "), nil
}

// NihilistDecrypt subtracts the keyword codes and maps the differences
// back through the square. Values that do not land on a grid cell are
// silently dropped.
func NihilistDecrypt(text, key string) (string, error) {
	if err := checkKeyword("nihilist", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare("", grid.Alphabet25, 5)
	kc := nihilistCodes(sq, grid.MergeJ(alphabet.Normalize(key)))
	var b strings.Builder
	i := 0
	for _, f := range strings.Fields(text) {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		n -= kc[i%len(kc)]
		i++
		r, c := n/10-1, n%10-1
		if r < 0 || r > 4 || c < 0 || c > 4 {
			continue
		}
		b.WriteByte(sq.At(r, c))
	}
	return b.String(), nil
}
