package mono

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

// AffineKey holds the validated parameters of E(x) = (a*x + b) mod 26.
type AffineKey struct {
	A, B int
}

// coprime26 reports whether a has a multiplicative inverse mod 26.
func coprime26(a int) bool {
	a = ((a % 26) + 26) % 26
	return a%2 != 0 && a%13 != 0
}

// modInverse finds a's inverse mod 26 by exhaustive search. The alphabet
// is fixed at 26 letters, so the scan is 25 multiplications at worst.
func modInverse(a int) (int, error) {
	a = ((a % 26) + 26) % 26
	for x := 1; x < 26; x++ {
		if a*x%26 == 1 {
			return x, nil
		}
	}
	return 0, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "%d has no inverse mod 26", a)
}

// ParseAffineKey parses an "a,b" key. Both parts must be non-negative
// integers and a must be coprime to 26, otherwise decryption would be
// impossible.
func ParseAffineKey(key string) (AffineKey, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return AffineKey{}, errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "affine key must be \"a,b\", got %q", key)
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return AffineKey{}, errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "affine key parts must be non-negative integers, got %q", key)
	}
	if !coprime26(a) {
		return AffineKey{}, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "affine multiplier %d is not coprime to 26", a)
	}
	return AffineKey{A: a, B: b}, nil
}

// AffineEncrypt maps each letter through (a*x + b) mod 26.
func AffineEncrypt(text string, key AffineKey) string {
	s := alphabet.Normalize(text)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.Letter(key.A*alphabet.Index(s[i]) + key.B)
	}
	return string(out)
}

// AffineDecrypt maps each letter through a' * (y - b) mod 26 where a' is
// the modular inverse of a. A non-invertible multiplier is an explicit
// InvalidKeyValue error, never silent wrong output.
func AffineDecrypt(text string, key AffineKey) (string, error) {
	inv, err := modInverse(key.A)
	if err != nil {
		return "", err
	}
	s := alphabet.Normalize(text)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.Letter(inv * (alphabet.Index(s[i]) - key.B + alphabet.Size))
	}
	return string(out), nil
}

// ParseMultiplicativeKey validates the multiplier of E(x) = a*x mod 26,
// restricted to the 12 values coprime to 26.
func ParseMultiplicativeKey(key string) (int, error) {
	a, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || a < 0 {
		return 0, errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "multiplicative key must be a non-negative integer, got %q", key)
	}
	if !coprime26(a) {
		return 0, errors.Wrapf(cryptarch.ErrInvalidKeyValue, "multiplier %d is not coprime to 26", a)
	}
	return a, nil
}

// MultiplicativeEncrypt is the degenerate affine cipher with b = 0.
func MultiplicativeEncrypt(text string, a int) string {
	return AffineEncrypt(text, AffineKey{A: a})
}

// MultiplicativeDecrypt inverts MultiplicativeEncrypt.
func MultiplicativeDecrypt(text string, a int) (string, error) {
	return AffineDecrypt(text, AffineKey{A: a})
}
