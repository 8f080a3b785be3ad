package registry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/cryptarch/cryptarch"
)

// sampleKeys holds a working key set for every keyed entry.
var sampleKeys = map[string][]string{
	"affine":         {"5,8"},
	"multiplicative": {"7"},
	"xor":            {"KEY"},
	"vigenere":       {"LEMON"},
	"columnar":       {"ZEBRA"},
	"doublecolumnar": {"ZEBRA", "CARGO"},
	"amsco":          {"BA", "12"},
	"skip":           {"2"},
	"caesarbox":      {"3"},
	"railfence":      {"3"},
	"scytale":        {"3"},
	"playfair":       {"PLAYFAIR"},
	"twosquare":      {"EXAMPLE", "KEYWORD"},
	"threesquare":    {"ONE", "TWO", "THREE"},
	"foursquare":     {"EXAMPLE", "KEYWORD"},
	"nihilist":       {"RUSSIAN"},
	"bifid":          {"KEYWORD"},
	"trifid":         {"KEYWORD"},
	"digrafid":       {"KEYWORD"},
	"morbit":         {"ALGORITHM"},
	"pollux":         {".-x.-x.-x."},
	"adfgx":          {"SECRET", "CARGO"},
	"adfgvx":         {"SECRET", "CARGO"},
	"vic":            {"OCEANOGRAPHY", "19870314"},
}

func TestLookup(t *testing.T) {
	e, err := Lookup("caesar")
	require.NoError(t, err)
	require.Equal(t, "caesar", e.Name)

	// case and whitespace insensitive
	e, err = Lookup("  CaEsAr ")
	require.NoError(t, err)
	require.Equal(t, "caesar", e.Name)

	_, err = Lookup("enigma")
	require.True(t, cryptarch.IsErrUnknownAlgorithm(err))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.True(t, sort.StringsAreSorted(names))
	require.Len(t, names, len(entries))
	require.Contains(t, names, "vic")
	require.Contains(t, names, "base64")
}

func TestCheckKeys(t *testing.T) {
	e, err := Lookup("playfair")
	require.NoError(t, err)
	require.True(t, e.NeedsKey())
	require.True(t, cryptarch.IsErrMissingKey(e.CheckKeys(nil)))
	require.NoError(t, e.CheckKeys([]string{"PLAYFAIR"}))

	e, err = Lookup("morse")
	require.NoError(t, err)
	require.False(t, e.NeedsKey())
	require.NoError(t, e.CheckKeys(nil))
}

func TestKeyedEntriesRejectMissingKeys(t *testing.T) {
	for _, e := range All() {
		if !e.NeedsKey() {
			continue
		}
		_, err := e.Encrypt("ATTACK", nil)
		require.Error(t, err, e.Name)
	}
}

func TestAllEntriesTransform(t *testing.T) {
	for _, e := range All() {
		keys := sampleKeys[e.Name]
		if e.NeedsKey() {
			require.Len(t, keys, len(e.KeyNames), e.Name)
		}
		enc, err := e.Encrypt("Attack at dawn", keys)
		require.NoError(t, err, e.Name)
		_, err = e.Decrypt(enc, keys)
		require.NoError(t, err, e.Name)
	}
}

func TestEntryMetadata(t *testing.T) {
	for _, e := range All() {
		require.NotEmpty(t, e.Summary, e.Name)
		require.NotEmpty(t, e.Info, e.Name)
		require.NotNil(t, e.Encrypt, e.Name)
		require.NotNil(t, e.Decrypt, e.Name)
		if e.Keyless {
			require.Empty(t, e.KeyNames, e.Name)
		}
	}
}

// entries hold no mutable state, so concurrent transforms must not race
func TestConcurrentTransforms(t *testing.T) {
	var eg errgroup.Group
	for _, e := range All() {
		e := e
		eg.Go(func() error {
			keys := sampleKeys[e.Name]
			enc, err := e.Encrypt("The quick brown fox", keys)
			if err != nil {
				return err
			}
			_, err = e.Decrypt(enc, keys)
			return err
		})
	}
	require.NoError(t, eg.Wait())
}
