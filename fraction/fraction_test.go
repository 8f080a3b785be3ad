package fraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptarch/cryptarch"
)

func TestBifidWorkedExample(t *testing.T) {
	// Delastelle's own square, passed verbatim as the key
	const key = "BGWKZQPNDSIOAXEFCLUMTHYVR"
	enc, err := BifidEncrypt("FLEEATONCE", key)
	require.NoError(t, err)
	require.Equal(t, "UAEOLWRINS", enc)

	dec, err := BifidDecrypt(enc, key)
	require.NoError(t, err)
	require.Equal(t, "FLEEATONCE", dec)
}

func TestBifidRoundTrip(t *testing.T) {
	for _, txt := range []string{"", "A", "AB", "ATTACKATDAWN", "THEQUICKBROWNFOX"} {
		enc, err := BifidEncrypt(txt, "ZEBRA")
		require.NoError(t, err)
		dec, err := BifidDecrypt(enc, "ZEBRA")
		require.NoError(t, err)
		require.Equal(t, jToI(txt), dec)
	}
}

func TestTrifidRoundTrip(t *testing.T) {
	for _, txt := range []string{"", "A", "ATTACKATDAWN", "AIDETOILECIELTAIDERA", "PLUS+SIGN"} {
		enc, err := TrifidEncrypt(txt, "FELIX")
		require.NoError(t, err)
		require.Len(t, enc, len(trifidText(txt)))
		dec, err := TrifidDecrypt(enc, "FELIX")
		require.NoError(t, err)
		require.Equal(t, trifidText(txt), dec)
	}
}

func TestDigrafidRoundTrip(t *testing.T) {
	for _, txt := range []string{"", "AB", "ATTACKATDAWN", "ODD"} {
		enc, err := DigrafidEncrypt(txt, "CIPHER")
		require.NoError(t, err)
		require.Equal(t, 0, len(enc)%2)
		dec, err := DigrafidDecrypt(enc, "CIPHER")
		require.NoError(t, err)
		require.Equal(t, digrafidPrepare(txt), dec)
	}
}

func TestMorbit(t *testing.T) {
	enc, err := MorbitEncrypt("SOS", "ALGORITHM")
	require.NoError(t, err)
	for i := 0; i < len(enc); i++ {
		require.True(t, enc[i] >= '1' && enc[i] <= '9')
	}
	dec, err := MorbitDecrypt(enc, "ALGORITHM")
	require.NoError(t, err)
	require.Equal(t, "SOS", dec)

	// digit permutation key accepted verbatim
	enc2, err := MorbitEncrypt("SOS", "123456789")
	require.NoError(t, err)
	dec2, err := MorbitDecrypt(enc2, "123456789")
	require.NoError(t, err)
	require.Equal(t, "SOS", dec2)
}

func TestMorbitKeyValidation(t *testing.T) {
	_, err := MorbitEncrypt("SOS", "112345678")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
	_, err = MorbitEncrypt("SOS", "TOOLONGKEYWORD")
	require.True(t, cryptarch.IsErrInvalidKeyFormat(err))
	_, err = MorbitEncrypt("SOS", "SHORT")
	require.True(t, cryptarch.IsErrInvalidKeyFormat(err))
}

func TestPollux(t *testing.T) {
	const key = ".-x.-x.-x."
	enc, err := PolluxEncrypt("ATTACKATDAWN", key)
	require.NoError(t, err)
	dec, err := PolluxDecrypt(enc, key)
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", dec)
}

func TestPolluxOutputSpaceSeparated(t *testing.T) {
	enc, err := PolluxEncrypt("SOS", ".-x.-x.-x.")
	require.NoError(t, err)
	// "...x---x..." is eleven morse symbols, so eleven single digits
	fields := strings.Fields(enc)
	require.Len(t, fields, 11)
	require.Equal(t, enc, strings.Join(fields, " "))
	for _, f := range fields {
		require.Len(t, f, 1)
		require.True(t, f[0] >= '0' && f[0] <= '9')
	}
}

func TestPolluxKeyValidation(t *testing.T) {
	_, err := PolluxEncrypt("SOS", ".-x")
	require.True(t, cryptarch.IsErrInvalidKeyFormat(err))
	_, err = PolluxEncrypt("SOS", ".-a.-x.-x.")
	require.True(t, cryptarch.IsErrInvalidKeyFormat(err))
	// '-' never assigned
	_, err = PolluxEncrypt("SOS", "..x..x..x.")
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
