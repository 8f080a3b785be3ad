package vic

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
)

// frequent is the fixed order in which the eight most frequent English
// letters take the single-digit codes.
const frequent = "ETAONISR"

// rare is the alphabet minus the frequent letters, in alphabetical order;
// these take the two-digit codes.
const rare = "BCDFGHJKLMPQUVWXYZ"

// Checkerboard is a straddling checkerboard built from an eight-digit key.
// The key digits become the single-digit codes of ETAONISR; the two digits
// missing from the key become row headers, prefixing the two-digit codes
// of the remaining letters. Because no single-digit code ever equals a row
// header, the greedy decoder is unambiguous.
type Checkerboard struct {
	code    map[byte]string
	single  [10]byte
	headers [2]int
	pair    map[[2]int]byte
}

// NewCheckerboard validates the key (eight distinct digits) and lays out
// the board. Second digits of the two-digit codes run through the key
// digits first and then the headers.
func NewCheckerboard(key [8]int) (*Checkerboard, error) {
	var used [10]bool
	for _, d := range key {
		if d < 0 || d > 9 || used[d] {
			return nil, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "checkerboard key must be eight distinct digits, got %v", key)
		}
		used[d] = true
	}
	cb := &Checkerboard{
		code: make(map[byte]string, 26),
		pair: make(map[[2]int]byte, len(rare)),
	}
	h := 0
	for d := 0; d < 10; d++ {
		if !used[d] {
			cb.headers[h] = d
			h++
		}
	}

	for i := 0; i < len(frequent); i++ {
		cb.code[frequent[i]] = string(byte('0' + key[i]))
		cb.single[key[i]] = frequent[i]
	}

	seconds := make([]int, 0, 10)
	for _, d := range key {
		seconds = append(seconds, d)
	}
	seconds = append(seconds, cb.headers[0], cb.headers[1])
	for i := 0; i < len(rare); i++ {
		prefix := cb.headers[i/10]
		second := seconds[i%10]
		cb.code[rare[i]] = string([]byte{byte('0' + prefix), byte('0' + second)})
		cb.pair[[2]int{prefix, second}] = rare[i]
	}
	return cb, nil
}

// Encode maps normalized letters to their digit codes.
func (cb *Checkerboard) Encode(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		b.WriteString(cb.code[text[i]])
	}
	return b.String()
}

// Decode reads greedily: a digit that is a single-letter code is emitted
// directly, a header digit consumes the next digit and looks the pair up.
// Unknown pairs and a trailing lone header are dropped.
func (cb *Checkerboard) Decode(digits string) string {
	var b strings.Builder
	for i := 0; i < len(digits); {
		c := digits[i]
		if c < '0' || c > '9' {
			i++
			continue
		}
		d := int(c - '0')
		if cb.single[d] != 0 {
			b.WriteByte(cb.single[d])
			i++
			continue
		}
		if i+1 >= len(digits) {
			break
		}
		second := digits[i+1]
		if second >= '0' && second <= '9' {
			if l, ok := cb.pair[[2]int{d, int(second - '0')}]; ok {
				b.WriteByte(l)
			}
		}
		i += 2
	}
	return b.String()
}
