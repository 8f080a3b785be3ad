package codes

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

// tapAlphabet is the 5x5 tap code square; K is traditionally knocked as C.
const tapAlphabet = "ABCDEFGHIJLMNOPQRSTUVWXYZ"

// TapEncode emits each letter as two dot groups (row then column, both
// 1-based) separated by one space, with / between letters.
func TapEncode(text string) (string, error) {
	s := strings.ReplaceAll(alphabet.Normalize(text), "K", "C")
	letters := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		p := strings.IndexByte(tapAlphabet, s[i])
		if p < 0 {
			continue
		}
		letters = append(letters, strings.Repeat(".", p/5+1)+" "+strings.Repeat(".", p%5+1))
	}
	return strings.Join(letters, "/"), nil
}

// TapDecode counts the dots of each row/column group pair; groups outside
// the square are dropped.
func TapDecode(text string) (string, error) {
	var b strings.Builder
	for _, letter := range strings.Split(text, "/") {
		groups := strings.Fields(letter)
		if len(groups) != 2 {
			continue
		}
		r, c := len(groups[0]), len(groups[1])
		if r < 1 || r > 5 || c < 1 || c > 5 {
			continue
		}
		if strings.Trim(groups[0], ".") != "" || strings.Trim(groups[1], ".") != "" {
			continue
		}
		b.WriteByte(tapAlphabet[(r-1)*5+c-1])
	}
	return b.String(), nil
}
