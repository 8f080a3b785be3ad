package codes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMorse(t *testing.T) {
	enc, err := MorseEncode("SOS")
	require.NoError(t, err)
	require.Equal(t, "... --- ...", enc)

	enc, err = MorseEncode("Hello, World!")
	require.NoError(t, err)
	require.Equal(t, ".... . .-.. .-.. ---   .-- --- .-. .-.. -..", enc)

	dec, err := MorseDecode(enc)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", dec)

	// unknown codes dropped
	dec, err = MorseDecode("... .-.-.-.- ---")
	require.NoError(t, err)
	require.Equal(t, "SO", dec)
}

func TestNato(t *testing.T) {
	enc, err := NatoEncode("SOS go")
	require.NoError(t, err)
	require.Equal(t, "SIERRA OSCAR SIERRA / GOLF OSCAR", enc)

	dec, err := NatoDecode(enc)
	require.NoError(t, err)
	require.Equal(t, "SOS GO", dec)

	dec, err = NatoDecode("sierra Oscar bogus SIERRA")
	require.NoError(t, err)
	require.Equal(t, "SOS", dec)
}

func TestNavajoRoundTrip(t *testing.T) {
	enc, err := NavajoEncode("Attack at dawn")
	require.NoError(t, err)
	dec, err := NavajoDecode(enc)
	require.NoError(t, err)
	require.Equal(t, "ATTACK AT DAWN", dec)
}

func TestA1Z26(t *testing.T) {
	enc, err := A1Z26Encode("abc z")
	require.NoError(t, err)
	require.Equal(t, "1 2 3 26", enc)

	dec, err := A1Z26Decode("1 2 3 27 0 26")
	require.NoError(t, err)
	require.Equal(t, "ABCZ", dec)
}

func TestTap(t *testing.T) {
	enc, err := TapEncode("AB")
	require.NoError(t, err)
	require.Equal(t, ". ./. ..", enc)

	// K is knocked as C
	enc, err = TapEncode("K")
	require.NoError(t, err)
	require.Equal(t, ". ...", enc)

	dec, err := TapDecode(". ./. ..")
	require.NoError(t, err)
	require.Equal(t, "AB", dec)

	dec, err = TapDecode("...... ./. ..")
	require.NoError(t, err)
	require.Equal(t, "B", dec)
}

func TestT9(t *testing.T) {
	enc, err := T9Encode("HELLO")
	require.NoError(t, err)
	require.Equal(t, "44 33 555 555 666", enc)

	enc, err = T9Encode("hi you")
	require.NoError(t, err)
	require.Equal(t, "44 444 0 999 666 88", enc)

	dec, err := T9Decode(enc)
	require.NoError(t, err)
	require.Equal(t, "HI YOU", dec)

	// mixed-digit and overlong tokens dropped
	dec, err = T9Decode("44 23 7777 77777")
	require.NoError(t, err)
	require.Equal(t, "HS", dec)
}

func TestBraille(t *testing.T) {
	enc, err := BrailleEncode("Hello World")
	require.NoError(t, err)
	for _, r := range enc {
		require.True(t, r >= '⠀' && r <= '⣿')
	}
	dec, err := BrailleDecode(enc)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", dec)
}

func TestBase2(t *testing.T) {
	enc, err := Base2Encode("AB")
	require.NoError(t, err)
	require.Equal(t, "01000001 01000010", enc)
	dec, err := Base2Decode(enc + " 2222")
	require.NoError(t, err)
	require.Equal(t, "AB", dec)
}

func TestBase8(t *testing.T) {
	enc, err := Base8Encode("A")
	require.NoError(t, err)
	require.Equal(t, "101", enc)
	dec, err := Base8Decode(enc)
	require.NoError(t, err)
	require.Equal(t, "A", dec)
}

func TestBase10(t *testing.T) {
	enc, err := Base10Encode("AB")
	require.NoError(t, err)
	require.Equal(t, "65 66", enc)
	dec, err := Base10Decode("65 66 999")
	require.NoError(t, err)
	require.Equal(t, "AB", dec)
}

func TestBase16(t *testing.T) {
	enc, err := Base16Encode("AB")
	require.NoError(t, err)
	require.Equal(t, "4142", enc)

	// junk filtered, odd trailing nibble dropped
	dec, err := Base16Decode("41:42:4")
	require.NoError(t, err)
	require.Equal(t, "AB", dec)
}

func TestBase32(t *testing.T) {
	enc, err := Base32Encode("foo")
	require.NoError(t, err)
	require.Equal(t, "MZXW6===", enc)
	dec, err := Base32Decode(enc)
	require.NoError(t, err)
	require.Equal(t, "foo", dec)
}

func TestBase64(t *testing.T) {
	enc, err := Base64Encode("FEP")
	require.NoError(t, err)
	require.Equal(t, "RkVQ", enc)
	dec, err := Base64Decode(" RkVQ ")
	require.NoError(t, err)
	require.Equal(t, "FEP", dec)

	_, err = Base64Decode("!!!!")
	require.Error(t, err)
}

func TestURL(t *testing.T) {
	enc, err := URLEncode("a b&c")
	require.NoError(t, err)
	require.Equal(t, "a+b%26c", enc)
	dec, err := URLDecode(enc)
	require.NoError(t, err)
	require.Equal(t, "a b&c", dec)

	_, err = URLDecode("%zz")
	require.Error(t, err)
}

func TestAltCode(t *testing.T) {
	enc, err := AltCodeEncode("Aé")
	require.NoError(t, err)
	require.Equal(t, "65 233", enc)
	dec, err := AltCodeDecode("65 233 99999999")
	require.NoError(t, err)
	require.Equal(t, "Aé", dec)
}
