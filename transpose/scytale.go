package transpose

import (
	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

func checkRows(rows int) error {
	if rows <= 1 {
		return errors.Wrapf(cryptarch.ErrInvalidKeyValue, "scytale: row count must be greater than 1, got %d", rows)
	}
	return nil
}

// ScytaleEncrypt wraps the text around a rod with the given number of
// rows: write row-major into a grid of ceil(n/rows) columns, read
// column-major, skipping the unfilled tail cells.
func ScytaleEncrypt(text string, rows int) (string, error) {
	if err := checkRows(rows); err != nil {
		return "", err
	}
	plain := alphabet.Normalize(text)
	n := len(plain)
	if n == 0 {
		return "", nil
	}
	colsN := (n + rows - 1) / rows
	out := make([]byte, 0, n)
	for c := 0; c < colsN; c++ {
		for r := 0; r < rows; r++ {
			if i := r*colsN + c; i < n {
				out = append(out, plain[i])
			}
		}
	}
	return string(out), nil
}

// ScytaleDecrypt walks the same cell order as encryption, assigning the
// ciphertext back into a row-major grid.
func ScytaleDecrypt(text string, rows int) (string, error) {
	if err := checkRows(rows); err != nil {
		return "", err
	}
	cipher := alphabet.Normalize(text)
	n := len(cipher)
	if n == 0 {
		return "", nil
	}
	colsN := (n + rows - 1) / rows
	out := make([]byte, n)
	pos := 0
	for c := 0; c < colsN; c++ {
		for r := 0; r < rows; r++ {
			if i := r*colsN + c; i < n {
				out[i] = cipher[pos]
				pos++
			}
		}
	}
	return string(out), nil
}
