package vic

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/transpose"
)

// Encrypt runs the full pipeline: derive keys, substitute through the
// straddling checkerboard, transpose the digit stream columnar-wise under
// the derived key. Keys are never transmitted; both sides re-derive them
// from the same phrase and date.
func Encrypt(text, phrase, date string) (string, error) {
	keys, err := DeriveKeys(phrase, date)
	if err != nil {
		return "", err
	}
	cb, err := NewCheckerboard(keys.Checkerboard)
	if err != nil {
		return "", err
	}
	digits := cb.Encode(alphabet.Normalize(text))
	return transpose.Encrypt(digits, keys.Columnar), nil
}

// Decrypt re-derives the same keys and runs the stages in reverse:
// transposition inverse first, then the checkerboard's greedy decode.
func Decrypt(text, phrase, date string) (string, error) {
	keys, err := DeriveKeys(phrase, date)
	if err != nil {
		return "", err
	}
	cb, err := NewCheckerboard(keys.Checkerboard)
	if err != nil {
		return "", err
	}
	var digits strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			digits.WriteByte(text[i])
		}
	}
	inter := transpose.Decrypt(digits.String(), keys.Columnar)
	return cb.Decode(inter), nil
}
