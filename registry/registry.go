// Package registry binds every cipher and encoding in the toolkit to a
// name, with the key names and description the CLI surfaces.
package registry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptarch/cryptarch"
)

// Lookup returns the entry registered under name (case-insensitive).
func Lookup(name string) (*cryptarch.Entry, error) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(cryptarch.ErrUnknownAlgorithm, "%q", name)
	}
	return e, nil
}

// All returns every entry sorted by name.
func All() []*cryptarch.Entry {
	out := make([]*cryptarch.Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted registered names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

var byName = func() map[string]*cryptarch.Entry {
	m := make(map[string]*cryptarch.Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}()

// adapter helpers: lift the typed cipher functions into TransformFunc

func plain(fn func(string) string) cryptarch.TransformFunc {
	return func(text string, _ []string) (string, error) { return fn(text), nil }
}

func keyless(fn func(string) (string, error)) cryptarch.TransformFunc {
	return func(text string, _ []string) (string, error) { return fn(text) }
}

// optionalKey1 passes the first key when given and the empty string
// otherwise, for ciphers with a usable unkeyed default.
func optionalKey1(fn func(text, key string) (string, error)) cryptarch.TransformFunc {
	return func(text string, keys []string) (string, error) {
		key := ""
		if len(keys) > 0 {
			key = keys[0]
		}
		return fn(text, key)
	}
}

func key1(fn func(text, key string) (string, error)) cryptarch.TransformFunc {
	return func(text string, keys []string) (string, error) {
		if len(keys) < 1 {
			return "", cryptarch.ErrMissingKey
		}
		return fn(text, keys[0])
	}
}

func key2(fn func(text, k1, k2 string) (string, error)) cryptarch.TransformFunc {
	return func(text string, keys []string) (string, error) {
		if len(keys) < 2 {
			return "", cryptarch.ErrMissingKey
		}
		return fn(text, keys[0], keys[1])
	}
}

func key3(fn func(text, k1, k2, k3 string) (string, error)) cryptarch.TransformFunc {
	return func(text string, keys []string) (string, error) {
		if len(keys) < 3 {
			return "", cryptarch.ErrMissingKey
		}
		return fn(text, keys[0], keys[1], keys[2])
	}
}

func intKey(fn func(text string, n int) (string, error)) cryptarch.TransformFunc {
	return func(text string, keys []string) (string, error) {
		if len(keys) < 1 {
			return "", cryptarch.ErrMissingKey
		}
		n, err := strconv.Atoi(strings.TrimSpace(keys[0]))
		if err != nil {
			return "", errors.Wrapf(cryptarch.ErrInvalidKeyFormat, "key must be an integer, got %q", keys[0])
		}
		return fn(text, n)
	}
}
