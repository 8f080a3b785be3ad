package fraction

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/codes"
	"github.com/cryptarch/cryptarch/transpose"
)

// morsePairs lists the nine two-symbol combinations over dot, dash and the
// x letter separator, in table order. Morbit maps each pair to one digit.
var morsePairs = [9]string{"..", ".-", ".x", "-.", "--", "-x", "x.", "x-", "xx"}

// morseStream renders normalized text as a morse symbol stream with x
// between letters.
func morseStream(text string) string {
	s := alphabet.Normalize(text)
	parts := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		parts = append(parts, codes.MorseTable[s[i]])
	}
	return strings.Join(parts, "x")
}

// morseParse maps a symbol stream back to letters: codes split on x,
// unknown codes dropped.
func morseParse(stream string) string {
	var b strings.Builder
	for _, code := range strings.Split(stream, "x") {
		if code == "" {
			continue
		}
		if letters, err := codes.MorseDecode(code); err == nil {
			b.WriteString(letters)
		}
	}
	return b.String()
}

// morbitPerm derives the digit assignment from the key: nine distinct
// digits 1-9 used verbatim, or a nine-letter keyword whose letters are
// ranked the same way transposition columns are.
func morbitPerm(key string) ([9]int, error) {
	var perm [9]int
	if len(key) == 9 && strings.Trim(key, "123456789") == "" {
		seen := [10]bool{}
		for i := 0; i < 9; i++ {
			d := int(key[i] - '0')
			if seen[d] {
				return perm, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "morbit: digit key must be a permutation of 1-9, got %q", key)
			}
			seen[d] = true
			perm[i] = d
		}
		return perm, nil
	}
	kw := alphabet.Normalize(key)
	if len(kw) != 9 {
		return perm, errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "morbit: key must be nine letters or a permutation of the digits 1-9, got %q", key)
	}
	for rank, i := range transpose.ColumnOrder(kw) {
		perm[i] = rank + 1
	}
	return perm, nil
}

// MorbitEncrypt writes the text as a morse stream, pads it to even length
// with x and replaces each symbol pair with its key digit.
func MorbitEncrypt(text, key string) (string, error) {
	perm, err := morbitPerm(key)
	if err != nil {
		return "", err
	}
	stream := morseStream(text)
	if len(stream)%2 == 1 {
		stream += "x"
	}
	digitFor := make(map[string]byte, 9)
	for i, p := range morsePairs {
		digitFor[p] = byte('0' + perm[i])
	}
	out := make([]byte, 0, len(stream)/2)
	for i := 0; i+1 < len(stream); i += 2 {
		out = append(out, digitFor[stream[i:i+2]])
	}
	return string(out), nil
}

// MorbitDecrypt expands each digit back to its symbol pair and parses the
// morse stream; digits outside the key mapping are dropped.
func MorbitDecrypt(text, key string) (string, error) {
	perm, err := morbitPerm(key)
	if err != nil {
		return "", err
	}
	pairFor := make(map[byte]string, 9)
	for i, p := range morsePairs {
		pairFor[byte('0'+perm[i])] = p
	}
	var stream strings.Builder
	for i := 0; i < len(text); i++ {
		if p, ok := pairFor[text[i]]; ok {
			stream.WriteString(p)
		}
	}
	return morseParse(stream.String()), nil
}
