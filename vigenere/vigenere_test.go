package vigenere

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptarch/cryptarch"
)

func TestAutokeyVector(t *testing.T) {
	// running key is LEMON + ATTACKA, not a repeated LEMON
	enc, err := Encrypt("ATTACKATDAWN", "LEMON")
	require.NoError(t, err)
	require.Equal(t, "LXFOPKTMDCGN", enc)

	dec, err := Decrypt(enc, "LEMON")
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", dec)
}

func TestAutokeyDiffersFromRepeatingKey(t *testing.T) {
	// the repeating-key result for this classic pair would be LXFOPVEFRNHR
	enc, err := Encrypt("ATTACKATDAWN", "LEMON")
	require.NoError(t, err)
	require.NotEqual(t, "LXFOPVEFRNHR", enc)
}

func TestRoundTrip(t *testing.T) {
	for _, txt := range []string{"", "A", "THEQUICKBROWNFOX", "attack at dawn"} {
		enc, err := Encrypt(txt, "CIPHER")
		require.NoError(t, err)
		dec, err := Decrypt(enc, "CIPHER")
		require.NoError(t, err)
		require.Equal(t, alphaOnly(txt), dec)
	}
}

func alphaOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			out = append(out, c)
		}
	}
	return string(out)
}

func TestKeyValidation(t *testing.T) {
	_, err := Encrypt("ATTACK", "123")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
	_, err = Decrypt("ATTACK", "")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
}
