package cryptarch

import "errors"

var (
	// ErrInvalidKeyFormat means the key string does not match the shape the
	// cipher requires, e.g. affine's "a,b" or amsco's pattern of 1s and 2s.
	ErrInvalidKeyFormat = errors.New("key does not match the required format")

	// ErrInvalidKeyValue means the key parsed but is unusable, e.g. an
	// affine multiplier with no inverse mod 26 or a rail count below 2.
	ErrInvalidKeyValue = errors.New("key value is not usable by this cipher")

	// ErrMissingKey means the cipher was invoked without all required keys.
	ErrMissingKey = errors.New("cipher requires a key")

	// ErrUnknownAlgorithm means no cipher or encoding is registered under
	// the requested name.
	ErrUnknownAlgorithm = errors.New("unknown cipher or encoding name")
)

func IsErrInvalidKeyFormat(err error) bool {
	return errors.Is(err, ErrInvalidKeyFormat)
}

func IsErrInvalidKeyValue(err error) bool {
	return errors.Is(err, ErrInvalidKeyValue)
}

func IsErrMissingKey(err error) bool {
	return errors.Is(err, ErrMissingKey)
}

func IsErrUnknownAlgorithm(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm)
}
