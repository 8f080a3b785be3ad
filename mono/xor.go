package mono

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
)

func xorBytes(data []byte, key string) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// XorEncrypt XORs the raw input bytes against the repeating key and
// returns the result as lowercase hexadecimal.
func XorEncrypt(text, key string) (string, error) {
	if key == "" {
		return "", errors.Wrap(cryptarch.ErrInvalidKeyValue, "xor: key must not be empty")
	}
	return hex.EncodeToString(xorBytes([]byte(text), key)), nil
}

// XorDecrypt parses the hexadecimal ciphertext and XORs it back.
func XorDecrypt(text, key string) (string, error) {
	if key == "" {
		return "", errors.Wrap(cryptarch.ErrInvalidKeyValue, "xor: key must not be empty")
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return "", errors.Wrap(err, "xor: ciphertext is not valid hexadecimal")
	}
	return string(xorBytes(raw, key)), nil
}
