package codes

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Base2Encode writes each input byte as eight binary digits,
// space-separated.
func Base2Encode(text string) (string, error) {
	groups := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		groups[i] = fmt.Sprintf("%08b", text[i])
	}
	return strings.Join(groups, " "), nil
}

// Base2Decode parses the binary groups back into bytes, dropping groups
// that are not valid 8-bit binary.
func Base2Decode(text string) (string, error) {
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		if n, err := strconv.ParseUint(f, 2, 8); err == nil {
			b.WriteByte(byte(n))
		}
	}
	return b.String(), nil
}

// Base8Encode writes each input byte as three octal digits.
func Base8Encode(text string) (string, error) {
	groups := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		groups[i] = fmt.Sprintf("%03o", text[i])
	}
	return strings.Join(groups, " "), nil
}

// Base8Decode parses the octal groups, dropping invalid ones.
func Base8Decode(text string) (string, error) {
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		if n, err := strconv.ParseUint(f, 8, 8); err == nil {
			b.WriteByte(byte(n))
		}
	}
	return b.String(), nil
}

// Base10Encode writes each input byte as its decimal value.
func Base10Encode(text string) (string, error) {
	groups := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		groups[i] = strconv.Itoa(int(text[i]))
	}
	return strings.Join(groups, " "), nil
}

// Base10Decode parses the decimal byte values, dropping anything outside
// 0-255.
func Base10Decode(text string) (string, error) {
	var b strings.Builder
	for _, f := range strings.Fields(text) {
		if n, err := strconv.ParseUint(f, 10, 8); err == nil {
			b.WriteByte(byte(n))
		}
	}
	return b.String(), nil
}

// Base16Encode writes the input as lowercase hexadecimal.
func Base16Encode(text string) (string, error) {
	return hex.EncodeToString([]byte(text)), nil
}

// Base16Decode strips anything that is not a hex digit, drops an odd
// trailing nibble and decodes the rest.
func Base16Decode(text string) (string, error) {
	var clean strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') {
			clean.WriteRune(r)
		}
	}
	s := clean.String()
	if len(s)%2 == 1 {
		s = s[:len(s)-1]
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrap(err, "base16 decode")
	}
	return string(raw), nil
}

// Base32Encode uses the RFC 4648 alphabet with = padding.
func Base32Encode(text string) (string, error) {
	return base32.StdEncoding.EncodeToString([]byte(text)), nil
}

// Base32Decode inverts Base32Encode.
func Base32Decode(text string) (string, error) {
	raw, err := base32.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", errors.Wrap(err, "base32 decode")
	}
	return string(raw), nil
}

// Base64Encode uses the standard RFC 4648 alphabet with = padding.
func Base64Encode(text string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// Base64Decode inverts Base64Encode.
func Base64Decode(text string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", errors.Wrap(err, "base64 decode")
	}
	return string(raw), nil
}
