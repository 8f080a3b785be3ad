package codes

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch/alphabet"
)

// A1Z26Encode numbers each letter 1 through 26, space-separated.
func A1Z26Encode(text string) (string, error) {
	s := alphabet.Normalize(text)
	groups := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		groups[i] = strconv.Itoa(alphabet.Index(s[i]) + 1)
	}
	return strings.Join(groups, " "), nil
}

// A1Z26Decode maps the numbers back to letters, dropping anything outside
// 1-26.
func A1Z26Decode(text string) (string, error) {
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > 26 {
			continue
		}
		b.WriteByte(alphabet.Letter(n - 1))
	}
	return b.String(), nil
}

// URLEncode percent-encodes the input as a query component.
func URLEncode(text string) (string, error) {
	return url.QueryEscape(text), nil
}

// URLDecode inverts URLEncode.
func URLDecode(text string) (string, error) {
	s, err := url.QueryUnescape(text)
	if err != nil {
		return "", errors.Wrap(err, "url decode")
	}
	return s, nil
}

// AltCodeEncode writes each rune's code point as a decimal number,
// space-separated.
func AltCodeEncode(text string) (string, error) {
	var groups []string
	for _, r := range text {
		groups = append(groups, strconv.Itoa(int(r)))
	}
	return strings.Join(groups, " "), nil
}

// AltCodeDecode maps the decimal code points back to runes, dropping
// values that are not valid code points.
func AltCodeDecode(text string) (string, error) {
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
			continue
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}
