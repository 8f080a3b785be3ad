// Package vigenere implements the autokey Vigenère cipher: the running key
// is the keyword followed by the plaintext itself, never a repeated short
// key.
package vigenere

import (
	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/alphabet"
)

func normalKey(key string) (string, error) {
	k := alphabet.Normalize(key)
	if k == "" {
		return "", errors.Wrap(cryptarch.ErrInvalidKeyValue, "vigenere: key has no letters")
	}
	return k, nil
}

// Encrypt computes C[i] = (P[i] + K[i]) mod 26 where K is the keyword
// extended by the plaintext.
func Encrypt(text, key string) (string, error) {
	k, err := normalKey(key)
	if err != nil {
		return "", err
	}
	plain := alphabet.Normalize(text)
	running := k + plain
	out := make([]byte, len(plain))
	for i := 0; i < len(plain); i++ {
		out[i] = alphabet.Letter(alphabet.Index(plain[i]) + alphabet.Index(running[i]))
	}
	return string(out), nil
}

// Decrypt rebuilds the running key as it goes: each recovered plaintext
// character is appended to the key stream and feeds the decryption of
// later positions, so the loop is inherently sequential.
func Decrypt(text, key string) (string, error) {
	k, err := normalKey(key)
	if err != nil {
		return "", err
	}
	cipher := alphabet.Normalize(text)
	running := make([]byte, 0, len(k)+len(cipher))
	running = append(running, k...)
	out := make([]byte, len(cipher))
	for i := 0; i < len(cipher); i++ {
		p := alphabet.Letter(alphabet.Index(cipher[i]) - alphabet.Index(running[i]) + alphabet.Size)
		out[i] = p
		running = append(running, p)
	}
	return string(out), nil
}
