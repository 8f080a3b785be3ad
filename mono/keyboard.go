package mono

import "strings"

// qwertyRows are the three physical letter rows. Each letter shifts to its
// right neighbor within its own row, wrapping at the row end.
var qwertyRows = [3]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func keyboardShift(text string, dir int) string {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		c := out[i]
		lower := c >= 'a' && c <= 'z'
		up := c
		if lower {
			up = c - 'a' + 'A'
		}
		for _, row := range qwertyRows {
			if j := strings.IndexByte(row, up); j >= 0 {
				n := len(row)
				r := row[((j+dir)%n+n)%n]
				if lower {
					r = r - 'A' + 'a'
				}
				out[i] = r
				break
			}
		}
	}
	return string(out)
}

// KeyboardEncrypt replaces each letter with its right-hand neighbor on the
// QWERTY row it lives on, wrapping per row. Case is preserved and
// non-letters pass through unchanged; input is not normalized.
func KeyboardEncrypt(text string) string {
	return keyboardShift(text, 1)
}

// KeyboardDecrypt shifts each letter back to its left-hand neighbor.
func KeyboardDecrypt(text string) string {
	return keyboardShift(text, -1)
}
