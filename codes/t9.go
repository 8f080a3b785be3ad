package codes

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

// t9Keys maps each keypad digit to its letters in press order.
var t9Keys = map[byte]string{
	'2': "ABC", '3': "DEF", '4': "GHI", '5': "JKL",
	'6': "MNO", '7': "PQRS", '8': "TUV", '9': "WXYZ",
}

var t9Digit = func() map[byte]string {
	m := make(map[byte]string, 26)
	for d, letters := range t9Keys {
		for i := 0; i < len(letters); i++ {
			m[letters[i]] = strings.Repeat(string(d), i+1)
		}
	}
	return m
}()

// T9Encode writes each letter as its keypad digit repeated once per press,
// letters separated by one space and words by a lone 0 token.
func T9Encode(text string) (string, error) {
	words := alphabet.NormalizeWords(text)
	groups := make([]string, 0, len(words))
	for _, w := range words {
		toks := make([]string, 0, len(w))
		for i := 0; i < len(w); i++ {
			toks = append(toks, t9Digit[w[i]])
		}
		groups = append(groups, strings.Join(toks, " "))
	}
	return strings.Join(groups, " 0 "), nil
}

// T9Decode turns each run-of-one-digit token back into a letter; 0 is the
// word break and malformed tokens are dropped.
func T9Decode(text string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		if tok == "0" {
			b.WriteByte(' ')
			continue
		}
		letters, ok := t9Keys[tok[0]]
		if !ok || strings.Count(tok, string(tok[0])) != len(tok) || len(tok) > len(letters) {
			continue
		}
		b.WriteByte(letters[len(tok)-1])
	}
	return strings.TrimSpace(b.String()), nil
}
