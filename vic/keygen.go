// Package vic implements the VIC cipher pipeline: deterministic key
// derivation from a phrase and date, straddling checkerboard substitution
// and columnar transposition of the resulting digits.
package vic

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

// Keys holds the two derived stage keys.
type Keys struct {
	Checkerboard [8]int
	Columnar     string
}

// DeriveKeys builds both stage keys from the phrase and date.
//
// The first ten unique letters of phrase+A..Z get digits 0-9 in order of
// appearance. The first five date characters become seed digits (digit
// characters verbatim, letters through the map). Chain addition
// seq[i] = (seq[i-5] + seq[i-4]) mod 10 extends the seed to 75 digits.
// The stream is then sequenced: for targets 1,2,...,9,0 record the
// position of each among the first ten unique digits of the stream. The
// first eight positions are the checkerboard key, the ninth (0 meaning
// 10) is the columnar key length, and the columnar key itself is cut from
// the chain-added stream at offset 50.
func DeriveKeys(phrase, date string) (Keys, error) {
	p := alphabet.Normalize(phrase) + alphabet.Upper
	letterDigit := make(map[byte]int, 10)
	for i := 0; i < len(p) && len(letterDigit) < 10; i++ {
		if _, ok := letterDigit[p[i]]; !ok {
			letterDigit[p[i]] = len(letterDigit)
		}
	}

	var seed []int
	for i := 0; i < len(date) && len(seed) < 5; i++ {
		c := date[i]
		switch {
		case c >= '0' && c <= '9':
			seed = append(seed, int(c-'0'))
		default:
			up := byte(strings.ToUpper(string(c))[0])
			if d, ok := letterDigit[up]; ok {
				seed = append(seed, d)
			}
		}
	}
	if len(seed) < 5 {
		return Keys{}, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "vic: date %q must yield five seed digits", date)
	}

	seq := make([]int, 5, 75)
	copy(seq, seed)
	for len(seq) < 75 {
		n := len(seq)
		seq = append(seq, (seq[n-5]+seq[n-4])%10)
	}

	// first ten unique digits in order of appearance; digits the generator
	// never produced are appended ascending so the permutation is total
	var uniq []int
	var seen [10]bool
	for _, d := range seq {
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
		if len(uniq) == 10 {
			break
		}
	}
	for d := 0; d < 10; d++ {
		if !seen[d] {
			uniq = append(uniq, d)
		}
	}

	pos := make(map[int]int, 10)
	for i, d := range uniq {
		pos[d] = i
	}
	perm := make([]int, 10)
	for i, target := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0} {
		perm[i] = pos[target]
	}

	var keys Keys
	copy(keys.Checkerboard[:], perm[:8])
	klen := perm[8]
	if klen == 0 {
		klen = 10
	}
	colKey := make([]byte, klen)
	for i := 0; i < klen; i++ {
		colKey[i] = byte('0' + seq[50+i])
	}
	keys.Columnar = string(colKey)
	return keys, nil
}
