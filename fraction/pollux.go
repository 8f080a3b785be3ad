package fraction

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
)

// polluxKey validates a ten-character assignment of morse symbols to the
// digits 0-9. Every digit position must hold '.', '-' or 'x' and each of
// the three symbols must be assigned to at least one digit.
func polluxKey(key string) (string, error) {
	if len(key) != 10 {
		return "", errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "pollux: key must assign one of . - x to each digit 0-9, got %q", key)
	}
	for i := 0; i < len(key); i++ {
		if key[i] != '.' && key[i] != '-' && key[i] != 'x' {
			return "", errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "pollux: key may contain only . - x, got %q", key[i])
		}
	}
	for _, sym := range []byte{'.', '-', 'x'} {
		if strings.IndexByte(key, sym) < 0 {
			return "", errors.Wrapf(cryptarch.ErrInvalidKeyValue, "pollux: key assigns no digit to %q", sym)
		}
	}
	return key, nil
}

// PolluxEncrypt writes the text as a morse stream and replaces each symbol
// with a digit assigned to it, cycling deterministically through the
// candidate digits for that symbol so repeated symbols spread across them.
// The digits are emitted space-separated, one per morse symbol.
func PolluxEncrypt(text, key string) (string, error) {
	k, err := polluxKey(key)
	if err != nil {
		return "", err
	}
	candidates := map[byte][]byte{}
	for d := 0; d < 10; d++ {
		candidates[k[d]] = append(candidates[k[d]], byte('0'+d))
	}
	stream := morseStream(text)
	next := map[byte]int{}
	out := make([]string, len(stream))
	for i := 0; i < len(stream); i++ {
		sym := stream[i]
		ds := candidates[sym]
		out[i] = string(ds[next[sym]%len(ds)])
		next[sym]++
	}
	return strings.Join(out, " "), nil
}

// PolluxDecrypt maps each digit back to its morse symbol and parses the
// stream; non-digit input is dropped.
func PolluxDecrypt(text, key string) (string, error) {
	k, err := polluxKey(key)
	if err != nil {
		return "", err
	}
	var stream strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			stream.WriteByte(k[text[i]-'0'])
		}
	}
	return morseParse(stream.String()), nil
}
