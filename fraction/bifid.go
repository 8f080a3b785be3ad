// Package fraction implements the fractionating ciphers: bifid, trifid,
// digrafid, morbit and pollux. Each splits its units into coordinate
// components, transposes the component streams and maps back.
package fraction

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

// BifidEncrypt fractionates each letter into its 5x5 row and column,
// concatenates all rows followed by all columns, and reads the combined
// stream back off in pairs.
func BifidEncrypt(text, key string) (string, error) {
	if err := checkKeyword("bifid", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	s := grid.MergeJ(alphabet.Normalize(text))
	n := len(s)
	stream := make([]int, 0, 2*n)
	colPart := make([]int, 0, n)
	for i := 0; i < n; i++ {
		r, c, _ := sq.Find(s[i])
		stream = append(stream, r)
		colPart = append(colPart, c)
	}
	stream = append(stream, colPart...)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = sq.At(stream[2*i], stream[2*i+1])
	}
	return string(out), nil
}

// BifidDecrypt reads the ciphertext's coordinates back into one stream,
// splits it in half (rows then columns) and interleaves.
func BifidDecrypt(text, key string) (string, error) {
	if err := checkKeyword("bifid", key); err != nil {
		return "", err
	}
	sq := grid.NewSquare(key, grid.Alphabet25, 5)
	s := grid.MergeJ(alphabet.Normalize(text))
	n := len(s)
	stream := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		r, c, _ := sq.Find(s[i])
		stream = append(stream, r, c)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = sq.At(stream[i], stream[n+i])
	}
	return string(out), nil
}
