package transpose

import (
	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

func checkWidth(name string, n int) error {
	if n <= 1 {
		return errors.Wrapf(cryptarch.ErrInvalidKeyValue, "%s: key must be an integer greater than 1, got %d", name, n)
	}
	if n > 190 {
		return errors.Wrapf(cryptarch.ErrInvalidKeyValue, "%s: key %d is too large", name, n)
	}
	return nil
}

// CaesarBoxEncrypt writes the text into n columns row by row and reads
// them out left to right: the columnar engine under a synthetic key in
// natural order.
func CaesarBoxEncrypt(text string, n int) (string, error) {
	if err := checkWidth("caesarbox", n); err != nil {
		return "", err
	}
	return Encrypt(alphabet.Normalize(text), SyntheticKey(n)), nil
}

// CaesarBoxDecrypt inverts CaesarBoxEncrypt.
func CaesarBoxDecrypt(text string, n int) (string, error) {
	if err := checkWidth("caesarbox", n); err != nil {
		return "", err
	}
	return Decrypt(alphabet.Normalize(text), SyntheticKey(n)), nil
}

// SkipEncrypt takes every n-th character starting at offset 0, then offset
// 1, and so on. That is exactly the columnar engine with n columns in
// natural order, so it delegates.
func SkipEncrypt(text string, n int) (string, error) {
	if err := checkWidth("skip", n); err != nil {
		return "", err
	}
	return Encrypt(alphabet.Normalize(text), SyntheticKey(n)), nil
}

// SkipDecrypt inverts SkipEncrypt.
func SkipDecrypt(text string, n int) (string, error) {
	if err := checkWidth("skip", n); err != nil {
		return "", err
	}
	return Decrypt(alphabet.Normalize(text), SyntheticKey(n)), nil
}
