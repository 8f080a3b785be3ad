package transpose

import (
	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

func checkRails(rails int) error {
	if rails <= 1 {
		return errors.Wrapf(cryptarch.ErrInvalidKeyValue, "railfence: rail count must be greater than 1, got %d", rails)
	}
	return nil
}

// railPattern yields the zigzag rail index for each of n positions.
func railPattern(n, rails int) []int {
	idx := make([]int, n)
	r, dir := 0, 1
	for i := 0; i < n; i++ {
		idx[i] = r
		if r == 0 {
			dir = 1
		} else if r == rails-1 {
			dir = -1
		}
		r += dir
	}
	return idx
}

// RailFenceEncrypt writes the text along a zigzag over the given number of
// rails and reads the rails top to bottom.
func RailFenceEncrypt(text string, rails int) (string, error) {
	if err := checkRails(rails); err != nil {
		return "", err
	}
	plain := alphabet.Normalize(text)
	rows := make([][]byte, rails)
	for i, r := range railPattern(len(plain), rails) {
		rows[r] = append(rows[r], plain[i])
	}
	out := make([]byte, 0, len(plain))
	for _, row := range rows {
		out = append(out, row...)
	}
	return string(out), nil
}

// RailFenceDecrypt rebuilds the zigzag: the same pattern tells how many
// ciphertext characters each rail holds, then the plaintext is read back
// along the pattern.
func RailFenceDecrypt(text string, rails int) (string, error) {
	if err := checkRails(rails); err != nil {
		return "", err
	}
	cipher := alphabet.Normalize(text)
	pattern := railPattern(len(cipher), rails)
	count := make([]int, rails)
	for _, r := range pattern {
		count[r]++
	}
	rows := make([]string, rails)
	off := 0
	for r := 0; r < rails; r++ {
		rows[r] = cipher[off : off+count[r]]
		off += count[r]
	}
	next := make([]int, rails)
	out := make([]byte, len(cipher))
	for i, r := range pattern {
		out[i] = rows[r][next[r]]
		next[r]++
	}
	return string(out), nil
}
