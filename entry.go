package cryptarch

import "github.com/pkg/errors"

// TransformFunc is the boundary type every registered algorithm exposes:
// a pure text-in text-out function taking the key strings supplied by the
// caller. Keyless encodings ignore the keys argument.
type TransformFunc func(text string, keys []string) (string, error)

// Entry is one registered cipher or encoding.
//
// For ciphers Encrypt/Decrypt are the keyed pair; for keyless encodings the
// same two slots hold encode/decode and KeyNames is empty. Info is the
// human-readable description printed by `cryptarch info`.
type Entry struct {
	Name     string
	Summary  string
	Info     string
	KeyNames []string
	Keyless  bool
	Encrypt  TransformFunc
	Decrypt  TransformFunc
}

// NeedsKey reports whether the entry requires at least one key.
func (e *Entry) NeedsKey() bool { return len(e.KeyNames) > 0 }

// CheckKeys verifies that the caller supplied every key the entry declares.
func (e *Entry) CheckKeys(keys []string) error {
	if len(keys) < len(e.KeyNames) {
		return errors.Wrapf(ErrMissingKey, "%s needs %d key(s): %v", e.Name, len(e.KeyNames), e.KeyNames)
	}
	return nil
}
