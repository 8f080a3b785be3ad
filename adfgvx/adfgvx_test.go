package adfgvx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptarch/cryptarch"
)

func TestADFGVXWorkedExample(t *testing.T) {
	// the classic 1918 example: scrambled grid passed verbatim as the key
	const gridKey = "NA1C3H8TB2OME5WRPD4F6G7I9J0KLQSUVXYZ"
	enc, err := EncryptADFGVX("attack at 1200am", gridKey, "PRIVACY")
	require.NoError(t, err)
	require.Equal(t, "DGDDDAGDDGAFADDFDADVDVFAADVX", enc)

	dec, err := DecryptADFGVX(enc, gridKey, "PRIVACY")
	require.NoError(t, err)
	require.Equal(t, "ATTACKAT1200AM", dec)
}

func TestADFGXRoundTrip(t *testing.T) {
	for _, txt := range []string{"", "A", "ATTACKATDAWN", "JINXED"} {
		enc, err := EncryptADFGX(txt, "BTALPDHOZKQFVSNGICUXMREWY", "CARGO")
		require.NoError(t, err)
		for i := 0; i < len(enc); i++ {
			require.Contains(t, "ADFGX", string(enc[i]))
		}
		dec, err := DecryptADFGX(enc, "BTALPDHOZKQFVSNGICUXMREWY", "CARGO")
		require.NoError(t, err)
		require.Equal(t, jToI(txt), dec)
	}
}

func TestADFGVXRoundTripOddColumns(t *testing.T) {
	// text lengths that do not divide the key length exercise the
	// column-length recovery
	for _, txt := range []string{"AB", "ATTACKATDAWN", "MEET ME AT 0600"} {
		enc, err := EncryptADFGVX(txt, "SECRET", "LEVEL")
		require.NoError(t, err)
		dec, err := DecryptADFGVX(enc, "SECRET", "LEVEL")
		require.NoError(t, err)
		require.Equal(t, alnumOnly(txt), dec)
	}
}

func TestTranspositionKeyValidation(t *testing.T) {
	_, err := EncryptADFGX("ATTACK", "KEY", "123")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
	_, err = EncryptADFGVX("ATTACK", "KEY", "")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
}

func jToI(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == 'J' {
			c = 'I'
		}
		if c >= 'A' && c <= 'Z' {
			out = append(out, c)
		}
	}
	return string(out)
}

func alnumOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			out = append(out, c)
		}
	}
	return string(out)
}
