package transpose

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

// checkPattern enforces the AMSCO fill pattern shape: one or more
// characters, each exactly '1' or '2'. Any other digit is rejected because
// the decryption simulation is only defined for chunk sizes 1 and 2.
func checkPattern(pattern string) error {
	if pattern == "" {
		return errors.Wrap(cryptarch.ErrInvalidKeyFormat, "amsco: empty fill pattern")
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '1' && pattern[i] != '2' {
			return errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "amsco: pattern may contain only 1 and 2, got %q", pattern[i])
		}
	}
	return nil
}

// AmscoEncrypt is columnar transposition with an irregular fill: write
// step i places a chunk of pattern[i%len(pattern)] characters (1 or 2)
// into column i%len(keyword), and columns are read out in key order.
// The final chunk may be short when the text runs out mid-chunk.
func AmscoEncrypt(text, keyword, pattern string) (string, error) {
	kw, err := normalKeyword(keyword)
	if err != nil {
		return "", err
	}
	if err := checkPattern(pattern); err != nil {
		return "", err
	}
	plain := alphabet.Normalize(text)
	cols := make([][]byte, len(kw))
	step := 0
	for pos := 0; pos < len(plain); step++ {
		size := int(pattern[step%len(pattern)] - '0')
		if pos+size > len(plain) {
			size = len(plain) - pos
		}
		c := step % len(kw)
		cols[c] = append(cols[c], plain[pos:pos+size]...)
		pos += size
	}
	var b strings.Builder
	b.Grow(len(plain))
	for _, c := range ColumnOrder(kw) {
		b.Write(cols[c])
	}
	return b.String(), nil
}

// AmscoDecrypt first replays the encryption fill against the ciphertext
// length to learn how many characters each column received; only then can
// the key-ordered ciphertext be split back into columns and the chunks be
// read off in write order.
func AmscoDecrypt(text, keyword, pattern string) (string, error) {
	kw, err := normalKeyword(keyword)
	if err != nil {
		return "", err
	}
	if err := checkPattern(pattern); err != nil {
		return "", err
	}
	cipher := alphabet.Normalize(text)
	k := len(kw)

	// simulation pass: recover per-column character counts
	colLen := make([]int, k)
	step := 0
	for pos := 0; pos < len(cipher); step++ {
		size := int(pattern[step%len(pattern)] - '0')
		if pos+size > len(cipher) {
			size = len(cipher) - pos
		}
		colLen[step%k] += size
		pos += size
	}

	cols := make([]string, k)
	off := 0
	for _, c := range ColumnOrder(kw) {
		cols[c] = cipher[off : off+colLen[c]]
		off += colLen[c]
	}

	// replay the fill, pulling each chunk off the front of its column
	out := make([]byte, 0, len(cipher))
	used := make([]int, k)
	step = 0
	for pos := 0; pos < len(cipher); step++ {
		size := int(pattern[step%len(pattern)] - '0')
		if pos+size > len(cipher) {
			size = len(cipher) - pos
		}
		c := step % k
		out = append(out, cols[c][used[c]:used[c]+size]...)
		used[c] += size
		pos += size
	}
	return string(out), nil
}
