package fraction

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
	"github.com/cryptarch/cryptarch/grid"
)

// trifidText keeps A-Z plus the + filler that completes the 27-symbol
// alphabet.
func trifidText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		if r == '+' {
			b.WriteByte('+')
		} else if n := alphabet.Normalize(string(r)); n != "" {
			b.WriteString(n)
		}
	}
	return b.String()
}

// TrifidEncrypt fractionates each symbol into three 3x3x3 coordinates,
// concatenates the three component streams and regroups the combined
// stream into triples.
func TrifidEncrypt(text, key string) (string, error) {
	if err := checkKeyword("trifid", key); err != nil {
		return "", err
	}
	cu := grid.NewCube(key)
	s := trifidText(text)
	n := len(s)
	layers := make([]int, 0, n)
	rows := make([]int, 0, n)
	cols := make([]int, 0, n)
	for i := 0; i < n; i++ {
		l, r, c, _ := cu.Find(s[i])
		layers = append(layers, l)
		rows = append(rows, r)
		cols = append(cols, c)
	}
	stream := append(append(layers, rows...), cols...)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = cu.At(stream[3*i], stream[3*i+1], stream[3*i+2])
	}
	return string(out), nil
}

// TrifidDecrypt splits the recovered coordinate stream into three equal
// segments and interleaves one trit from each.
func TrifidDecrypt(text, key string) (string, error) {
	if err := checkKeyword("trifid", key); err != nil {
		return "", err
	}
	cu := grid.NewCube(key)
	s := trifidText(text)
	n := len(s)
	stream := make([]int, 0, 3*n)
	for i := 0; i < n; i++ {
		l, r, c, _ := cu.Find(s[i])
		stream = append(stream, l, r, c)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = cu.At(stream[i], stream[n+i], stream[2*n+i])
	}
	return string(out), nil
}
