package mono

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptarch/cryptarch"
)

func TestCaesar(t *testing.T) {
	require.Equal(t, "DWWDFN", CaesarEncrypt("ATTACK"))
	require.Equal(t, "ATTACK", CaesarDecrypt("DWWDFN"))
	require.Equal(t, "", CaesarEncrypt(""))
	require.Equal(t, "DWWDFN", CaesarEncrypt("at tack!"))
}

func TestSelfInverse(t *testing.T) {
	fns := map[string]func(string) string{
		"rot13":  Rot13,
		"atbash": Atbash,
		"albam":  Albam,
		"atbah":  Atbah,
	}
	for name, fn := range fns {
		require.Equal(t, "ATTACKATDAWN", fn(fn("ATTACKATDAWN")), name)
		require.Equal(t, "", fn(""), name)
	}
}

func TestRot47(t *testing.T) {
	require.Equal(t, "w6==@", Rot47("Hello"))
	require.Equal(t, "Hello, World! 123", Rot47(Rot47("Hello, World! 123")))
	// spaces are outside '!'..'~' and pass through
	require.Equal(t, " ", Rot47(" "))
}

func TestAtbahPairing(t *testing.T) {
	require.Equal(t, "I", Atbah("A"))
	require.Equal(t, "E", Atbah("E"))
	require.Equal(t, "N", Atbah("N"))
	require.Equal(t, "R", Atbah("J"))
	require.Equal(t, "Z", Atbah("S"))
	require.Equal(t, "W", Atbah("V"))
}

func TestKeyboardShift(t *testing.T) {
	require.Equal(t, "Jraap, Eptaf!", KeyboardEncrypt("Hello, World!"))
	require.Equal(t, "Hello, World!", KeyboardDecrypt("Jraap, Eptaf!"))
	// per-row wrap
	require.Equal(t, "Q", KeyboardEncrypt("P"))
	require.Equal(t, "A", KeyboardEncrypt("L"))
	require.Equal(t, "Z", KeyboardEncrypt("M"))
}

func TestAffineVector(t *testing.T) {
	k, err := ParseAffineKey("5,8")
	require.NoError(t, err)
	require.Equal(t, "IHHWVC", AffineEncrypt("AFFINE", k))

	dec, err := AffineDecrypt("IHHWVC", k)
	require.NoError(t, err)
	require.Equal(t, "AFFINE", dec)
}

func TestAffineKeyValidation(t *testing.T) {
	for _, key := range []string{"5", "5,8,3", "a,b", "-1,2", ""} {
		_, err := ParseAffineKey(key)
		require.True(t, cryptarch.IsErrInvalidKeyFormat(err), key)
	}
	for _, key := range []string{"2,1", "13,5", "26,0"} {
		_, err := ParseAffineKey(key)
		require.True(t, cryptarch.IsErrInvalidKeyValue(err), key)
	}
	// every valid multiplier round-trips
	for _, a := range []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25} {
		k := AffineKey{A: a, B: 7}
		dec, err := AffineDecrypt(AffineEncrypt("ATTACKATDAWN", k), k)
		require.NoError(t, err)
		require.Equal(t, "ATTACKATDAWN", dec)
	}
}

func TestMultiplicative(t *testing.T) {
	a, err := ParseMultiplicativeKey("7")
	require.NoError(t, err)
	enc := MultiplicativeEncrypt("ATTACKATDAWN", a)
	dec, err := MultiplicativeDecrypt(enc, a)
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", dec)

	_, err = ParseMultiplicativeKey("4")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
	_, err = ParseMultiplicativeKey("x")
	require.True(t, cryptarch.IsErrInvalidKeyFormat(err))
}

func TestXor(t *testing.T) {
	enc, err := XorEncrypt("Hello, World!", "key")
	require.NoError(t, err)
	dec, err := XorDecrypt(enc, "key")
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", dec)

	_, err = XorEncrypt("text", "")
	require.True(t, cryptarch.IsErrInvalidKeyValue(err))
	_, err = XorDecrypt("zz-not-hex", "key")
	require.Error(t, err)
}
