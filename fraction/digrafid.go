package fraction

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
)

// digrafidPrepare normalizes, merges J into I and pads to even length
// with X so the text splits cleanly into digraphs.
func digrafidPrepare(text string) string {
	s := grid.MergeJ(alphabet.Normalize(text))
	if len(s)%2 == 1 {
		s += "X"
	}
	return s
}

// DigrafidEncrypt fractionates each digraph into two coordinates over a
// keyed 25-letter alphabet (each letter's index, 0-24), concatenates all
// first coordinates followed by all second coordinates and regroups the
// stream pairwise into new digraphs. A digraph is effectively a cell of a
// 25x25 table addressed by four digits (two 2-digit coordinates).
func DigrafidEncrypt(text, key string) (string, error) {
	if err := checkKeyword("digrafid", key); err != nil {
		return "", err
	}
	alpha := grid.Keyed(key, grid.Alphabet25)
	s := digrafidPrepare(text)
	m := len(s) / 2
	stream := make([]int, 0, 2*m)
	second := make([]int, 0, m)
	for i := 0; i < m; i++ {
		stream = append(stream, strings.IndexByte(alpha, s[2*i]))
		second = append(second, strings.IndexByte(alpha, s[2*i+1]))
	}
	stream = append(stream, second...)
	out := make([]byte, len(s))
	for i := 0; i < m; i++ {
		out[2*i] = alpha[stream[2*i]]
		out[2*i+1] = alpha[stream[2*i+1]]
	}
	return string(out), nil
}

// DigrafidDecrypt reads the ciphertext digraphs back into one coordinate
// stream, splits it in half and interleaves one coordinate from each
// segment to rebuild the original digraphs.
func DigrafidDecrypt(text, key string) (string, error) {
	if err := checkKeyword("digrafid", key); err != nil {
		return "", err
	}
	alpha := grid.Keyed(key, grid.Alphabet25)
	s := digrafidPrepare(text)
	m := len(s) / 2
	stream := make([]int, 0, 2*m)
	for i := 0; i < len(s); i++ {
		stream = append(stream, strings.IndexByte(alpha, s[i]))
	}
	out := make([]byte, len(s))
	for i := 0; i < m; i++ {
		out[2*i] = alpha[stream[i]]
		out[2*i+1] = alpha[stream[m+i]]
	}
	return string(out), nil
}
