package alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"attack at dawn", "ATTACKATDAWN"},
		{"Álvaro Çedilla-Ñoño", "ALVAROCEDILLANONO"},
		{"123 !?", ""},
		{"", ""},
		{"already UPPER", "ALREADYUPPER"},
		{"Crème brûlée", "CREMEBRULEE"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Normalize(c.in))
	}
}

func TestNormalizeWords(t *testing.T) {
	require.Equal(t, []string{"HELLO", "WORLD"}, NormalizeWords("  hello,   world! "))
	require.Nil(t, NormalizeWords("123 456"))
}

func TestIndexLetterAgree(t *testing.T) {
	for i := 0; i < Size; i++ {
		require.Equal(t, i, Index(Letter(i)))
	}
	require.Equal(t, byte('A'), Letter(26))
	require.Equal(t, byte('Z'), Letter(-1))
	require.Equal(t, 0, Index('A'))
	require.Equal(t, 25, Index('Z'))
}
