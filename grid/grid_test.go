package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedDedupes(t *testing.T) {
	require.Equal(t, "PLAYFIREXMBCDGHKNOQSTUVWZ", Keyed("playfair example", Alphabet25))
	require.Equal(t, Alphabet25, Keyed("", Alphabet25))
	// J folds to I when the base has no J
	require.Equal(t, "I", Keyed("juice", Alphabet25)[:1])
	// digits survive in the 6x6 base
	require.Equal(t, "C0DE", Keyed("c0de", Alphabet36)[:4])
}

func TestKeyedFoldsAccents(t *testing.T) {
	// accented key letters fold the same way transposition keywords do
	require.Equal(t, Keyed("CAFE", Alphabet25), Keyed("Café", Alphabet25))
	require.Equal(t, Keyed("ELEVE", Alphabet36), Keyed("élève", Alphabet36))
}

func TestSquareRoundTrip(t *testing.T) {
	sq := NewSquare("zebra", Alphabet25, 5)
	for i := 0; i < len(Alphabet25); i++ {
		ch := Alphabet25[i]
		r, c, ok := sq.Find(ch)
		require.True(t, ok)
		require.Equal(t, ch, sq.At(r, c))
	}
	// wrap-around addressing
	require.Equal(t, sq.At(0, 0), sq.At(5, 5))
	_, _, ok := sq.Find('J')
	require.False(t, ok)
}

func TestCube(t *testing.T) {
	cu := NewCube("felix")
	require.Equal(t, byte('F'), cu.At(0, 0, 0))
	for i := 0; i < len(Alphabet27); i++ {
		l, r, c, ok := cu.Find(Alphabet27[i])
		require.True(t, ok)
		require.Equal(t, Alphabet27[i], cu.At(l, r, c))
	}
}

func TestNormalizeAlnum(t *testing.T) {
	require.Equal(t, "ATTACKAT1200AM", NormalizeAlnum("Attack at 12:00 AM!"))
}
