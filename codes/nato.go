package codes

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

var natoTable = map[byte]string{
	'A': "ALFA", 'B': "BRAVO", 'C': "CHARLIE", 'D': "DELTA", 'E': "ECHO",
	'F': "FOXTROT", 'G': "GOLF", 'H': "HOTEL", 'I': "INDIA", 'J': "JULIETT",
	'K': "KILO", 'L': "LIMA", 'M': "MIKE", 'N': "NOVEMBER", 'O': "OSCAR",
	'P': "PAPA", 'Q': "QUEBEC", 'R': "ROMEO", 'S': "SIERRA", 'T': "TANGO",
	'U': "UNIFORM", 'V': "VICTOR", 'W': "WHISKEY", 'X': "XRAY",
	'Y': "YANKEE", 'Z': "ZULU",
}

var natoInverse = invertWordTable(natoTable)

func invertWordTable(t map[byte]string) map[string]byte {
	m := make(map[string]byte, len(t))
	for c, w := range t {
		m[w] = c
	}
	return m
}

// encodeWordTable spells each word letter by letter through the table,
// joining letters with one space and word groups with " / ".
func encodeWordTable(t map[byte]string, text string) string {
	words := alphabet.NormalizeWords(text)
	groups := make([]string, 0, len(words))
	for _, w := range words {
		names := make([]string, 0, len(w))
		for i := 0; i < len(w); i++ {
			if name, ok := t[w[i]]; ok {
				names = append(names, name)
			}
		}
		groups = append(groups, strings.Join(names, " "))
	}
	return strings.Join(groups, " / ")
}

// decodeWordTable splits on the / word separator and matches each token
// case-insensitively; unknown tokens are dropped.
func decodeWordTable(inv map[string]byte, text string) string {
	var words []string
	for _, g := range strings.Split(text, "/") {
		var b strings.Builder
		for _, tok := range strings.Fields(g) {
			if c, ok := inv[strings.ToUpper(tok)]; ok {
				b.WriteByte(c)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	return strings.Join(words, " ")
}

// NatoEncode spells the text in the NATO phonetic alphabet.
func NatoEncode(text string) (string, error) {
	return encodeWordTable(natoTable, text), nil
}

// NatoDecode recovers the first letter of each phonetic word.
func NatoDecode(text string) (string, error) {
	return decodeWordTable(natoInverse, text), nil
}
