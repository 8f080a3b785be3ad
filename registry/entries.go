package registry

import (
	"github.com/cryptarch/cryptarch"
	"github.com/cryptarch/cryptarch/adfgvx"
	"github.com/cryptarch/cryptarch/codes"
	"github.com/cryptarch/cryptarch/fraction"
	"github.com/cryptarch/cryptarch/mono"
	"github.com/cryptarch/cryptarch/square"
	"github.com/cryptarch/cryptarch/transpose"
	"github.com/cryptarch/cryptarch/vic"
	"github.com/cryptarch/cryptarch/vigenere"
)

func affineEncrypt(text, key string) (string, error) {
	k, err := mono.ParseAffineKey(key)
	if err != nil {
		return "", err
	}
	return mono.AffineEncrypt(text, k), nil
}

func affineDecrypt(text, key string) (string, error) {
	k, err := mono.ParseAffineKey(key)
	if err != nil {
		return "", err
	}
	return mono.AffineDecrypt(text, k)
}

func multiplicativeEncrypt(text, key string) (string, error) {
	a, err := mono.ParseMultiplicativeKey(key)
	if err != nil {
		return "", err
	}
	return mono.MultiplicativeEncrypt(text, a), nil
}

func multiplicativeDecrypt(text, key string) (string, error) {
	a, err := mono.ParseMultiplicativeKey(key)
	if err != nil {
		return "", err
	}
	return mono.MultiplicativeDecrypt(text, a)
}

var entries = []*cryptarch.Entry{
	// monoalphabetic and byte-level substitution
	{
		Name:    "caesar",
		Summary: "shift cipher with the classical fixed shift of 3",
		Info:    "Shifts every letter three places down the alphabet, so ATTACK becomes DWWDFN. The shift is fixed at 3; no key is taken.",
		Encrypt: plain(mono.CaesarEncrypt),
		Decrypt: plain(mono.CaesarDecrypt),
	},
	{
		Name:    "rot13",
		Summary: "shift by 13, its own inverse",
		Info:    "Shifts every letter thirteen places. Because 13 is half the alphabet, encrypting twice restores the input.",
		Encrypt: plain(mono.Rot13),
		Decrypt: plain(mono.Rot13),
	},
	{
		Name:    "rot47",
		Summary: "shift printable ASCII by 47, its own inverse",
		Info:    "Rotates the 94 printable ASCII characters '!' through '~' by 47. Works on raw text, so digits and punctuation are transformed too; characters outside the range pass through.",
		Encrypt: plain(mono.Rot47),
		Decrypt: plain(mono.Rot47),
	},
	{
		Name:    "atbash",
		Summary: "mirror the alphabet, A<->Z",
		Info:    "Maps each letter to its mirror image in the alphabet: A to Z, B to Y and so on. Self-inverse.",
		Encrypt: plain(mono.Atbash),
		Decrypt: plain(mono.Atbash),
	},
	{
		Name:    "albam",
		Summary: "swap the two halves of the alphabet",
		Info:    "Pairs each letter of A-M with its partner in N-Z. Numerically identical to rot13 but defined as a direct pairing. Self-inverse.",
		Encrypt: plain(mono.Albam),
		Decrypt: plain(mono.Albam),
	},
	{
		Name:    "atbah",
		Summary: "fixed non-sequential letter pairing",
		Info:    "Applies the fixed atbah pairing: letters swap within each third of the alphabet (A<->I, B<->H, ... J<->R, ... S<->Z), with E and N unchanged. Self-inverse.",
		Encrypt: plain(mono.Atbah),
		Decrypt: plain(mono.Atbah),
	},
	{
		Name:    "keyboard",
		Summary: "shift letters one key to the right on QWERTY rows",
		Info:    "Replaces each letter with its right-hand neighbor on the QWERTY row it belongs to, wrapping at the row end. Case is preserved and non-letters pass through unchanged.",
		Encrypt: plain(mono.KeyboardEncrypt),
		Decrypt: plain(mono.KeyboardDecrypt),
	},
	{
		Name:     "affine",
		Summary:  "E(x) = (a*x + b) mod 26",
		Info:     "Maps each letter through (a*x + b) mod 26. The key is \"a,b\" with both non-negative; a must be one of the 12 values coprime to 26 or decryption is impossible.",
		KeyNames: []string{"a,b"},
		Encrypt:  key1(affineEncrypt),
		Decrypt:  key1(affineDecrypt),
	},
	{
		Name:     "multiplicative",
		Summary:  "E(x) = (a*x) mod 26",
		Info:     "The affine cipher with b fixed at 0. The multiplier must be coprime to 26.",
		KeyNames: []string{"a"},
		Encrypt:  key1(multiplicativeEncrypt),
		Decrypt:  key1(multiplicativeDecrypt),
	},
	{
		Name:     "xor",
		Summary:  "repeating-key byte XOR, hexadecimal output",
		Info:     "XORs the raw input bytes against the repeating key and prints lowercase hexadecimal. Decryption accepts the same hexadecimal form.",
		KeyNames: []string{"key"},
		Encrypt:  key1(mono.XorEncrypt),
		Decrypt:  key1(mono.XorDecrypt),
	},

	// polyalphabetic
	{
		Name:     "vigenere",
		Summary:  "autokey Vigenère",
		Info:     "Polyalphabetic shift where the running key is the keyword followed by the plaintext itself, not a repeated short key. Decryption rebuilds the key stream from each recovered letter.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(vigenere.Encrypt),
		Decrypt:  key1(vigenere.Decrypt),
	},

	// transposition family
	{
		Name:     "columnar",
		Summary:  "keyword columnar transposition",
		Info:     "Writes the text into columns under the keyword and reads the columns out in alphabetical key order, duplicate key letters keeping their left-to-right order.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(transpose.ColumnarEncrypt),
		Decrypt:  key1(transpose.ColumnarDecrypt),
	},
	{
		Name:     "doublecolumnar",
		Summary:  "columnar transposition applied twice",
		Info:     "Runs the columnar transposition twice with two keywords, greatly disturbing letter adjacency.",
		KeyNames: []string{"keyword1", "keyword2"},
		Encrypt:  key2(transpose.DoubleEncrypt),
		Decrypt:  key2(transpose.DoubleDecrypt),
	},
	{
		Name:     "amsco",
		Summary:  "columnar transposition with 1/2-character chunks",
		Info:     "Columnar transposition that deals alternating chunks of one and two characters into the columns, following a pattern of 1s and 2s. Decryption first simulates the fill against the ciphertext length.",
		KeyNames: []string{"keyword", "pattern"},
		Encrypt:  key2(transpose.AmscoEncrypt),
		Decrypt:  key2(transpose.AmscoDecrypt),
	},
	{
		Name:     "skip",
		Summary:  "take every n-th letter",
		Info:     "Reads every n-th letter starting at each offset in turn; equivalent to columnar transposition with columns in natural order. The key is an integer greater than 1.",
		KeyNames: []string{"n"},
		Encrypt:  intKey(transpose.SkipEncrypt),
		Decrypt:  intKey(transpose.SkipDecrypt),
	},
	{
		Name:     "caesarbox",
		Summary:  "write into a box row-wise, read column-wise",
		Info:     "Writes the text row by row into n columns and reads the columns left to right. The key is an integer greater than 1.",
		KeyNames: []string{"n"},
		Encrypt:  intKey(transpose.CaesarBoxEncrypt),
		Decrypt:  intKey(transpose.CaesarBoxDecrypt),
	},
	{
		Name:     "railfence",
		Summary:  "zigzag transposition over n rails",
		Info:     "Writes the text in a zigzag across the given number of rails and reads the rails top to bottom. The rail count must be greater than 1.",
		KeyNames: []string{"rails"},
		Encrypt:  intKey(transpose.RailFenceEncrypt),
		Decrypt:  intKey(transpose.RailFenceDecrypt),
	},
	{
		Name:     "scytale",
		Summary:  "wrap the text around a rod of n rows",
		Info:     "Simulates the Spartan scytale: the text is wrapped around a rod with the given number of rows and read along the rod. The row count must be greater than 1.",
		KeyNames: []string{"rows"},
		Encrypt:  intKey(transpose.ScytaleEncrypt),
		Decrypt:  intKey(transpose.ScytaleDecrypt),
	},

	// polygraphic squares
	{
		Name:     "playfair",
		Summary:  "digraph substitution over a keyed 5x5 grid",
		Info:     "Encrypts letter pairs through a keyed 5x5 grid (I and J share a cell): same row shifts right, same column shifts down, otherwise the rectangle corners swap. X fillers split double letters and pad odd input.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(square.PlayfairEncrypt),
		Decrypt:  key1(square.PlayfairDecrypt),
	},
	{
		Name:     "twosquare",
		Summary:  "digraph substitution over two keyed grids",
		Info:     "Looks the first letter up in one keyed grid and the second in the other and swaps their columns. Encrypting twice restores the input.",
		KeyNames: []string{"keyword1", "keyword2"},
		Encrypt:  key2(square.TwoSquareEncrypt),
		Decrypt:  key2(square.TwoSquareDecrypt),
	},
	{
		Name:     "threesquare",
		Summary:  "digraph substitution over three keyed grids",
		Info:     "Locates the pair in the first two keyed grids and emits both ciphertext letters from the third at the crossed coordinates. Not self-inverse: decryption looks the ciphertext up in the third grid.",
		KeyNames: []string{"keyword1", "keyword2", "keyword3"},
		Encrypt:  key3(square.ThreeSquareEncrypt),
		Decrypt:  key3(square.ThreeSquareDecrypt),
	},
	{
		Name:     "foursquare",
		Summary:  "digraph substitution over two keyed and two plain grids",
		Info:     "The plain alphabet sits in the top-left and bottom-right quadrants, the keyed grids top-right and bottom-left. Plaintext is looked up in the plain grids and ciphertext read from the keyed ones; decryption reverses the roles.",
		KeyNames: []string{"keyword1", "keyword2"},
		Encrypt:  key2(square.FourSquareEncrypt),
		Decrypt:  key2(square.FourSquareDecrypt),
	},
	{
		Name:    "polybius",
		Summary: "letters to row/column digit pairs",
		Info:    "Replaces each letter with its 1-based row and column in a 5x5 square, as space-separated digit pairs. An optional keyword scrambles the square.",
		Encrypt: optionalKey1(square.PolybiusEncrypt),
		Decrypt: optionalKey1(square.PolybiusDecrypt),
	},
	{
		Name:     "nihilist",
		Summary:  "polybius codes plus a repeating keyword",
		Info:     "Adds the repeating keyword's polybius codes to the plaintext's codes and prints the space-separated sums.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(square.NihilistEncrypt),
		Decrypt:  key1(square.NihilistDecrypt),
	},

	// fractionation
	{
		Name:     "bifid",
		Summary:  "5x5 coordinate fractionation",
		Info:     "Splits each letter into its grid row and column, writes all rows then all columns, and regroups the stream into new coordinate pairs.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(fraction.BifidEncrypt),
		Decrypt:  key1(fraction.BifidDecrypt),
	},
	{
		Name:     "trifid",
		Summary:  "3x3x3 coordinate fractionation",
		Info:     "Like bifid but over a 27-symbol cube (A-Z plus +), fractionating each symbol into three coordinates.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(fraction.TrifidEncrypt),
		Decrypt:  key1(fraction.TrifidDecrypt),
	},
	{
		Name:     "digrafid",
		Summary:  "digraph fractionation over a keyed alphabet",
		Info:     "Fractionates each letter pair into two coordinates over a keyed 25-letter alphabet, transposes the coordinate streams and maps back. Odd input is padded with X.",
		KeyNames: []string{"keyword"},
		Encrypt:  key1(fraction.DigrafidEncrypt),
		Decrypt:  key1(fraction.DigrafidDecrypt),
	},
	{
		Name:     "morbit",
		Summary:  "morse pairs to digits",
		Info:     "Writes the text as morse with x between letters and replaces each pair of symbols with a digit. The key is nine letters (ranked alphabetically) or a permutation of the digits 1-9.",
		KeyNames: []string{"key"},
		Encrypt:  key1(fraction.MorbitEncrypt),
		Decrypt:  key1(fraction.MorbitDecrypt),
	},
	{
		Name:     "pollux",
		Summary:  "morse symbols to digits",
		Info:     "Replaces each morse symbol with one of the digits assigned to it by the ten-character key over . - x, cycling deterministically through the candidates. The digits are space-separated.",
		KeyNames: []string{"key"},
		Encrypt:  key1(fraction.PolluxEncrypt),
		Decrypt:  key1(fraction.PolluxDecrypt),
	},

	// two-stage substitution + transposition
	{
		Name:     "adfgx",
		Summary:  "5x5 coordinate substitution plus columnar transposition",
		Info:     "Substitutes each letter with a pair drawn from ADFGX via a keyed 5x5 grid, then transposes the pair stream columnar-wise under a second key.",
		KeyNames: []string{"gridkey", "transpositionkey"},
		Encrypt:  key2(adfgvx.EncryptADFGX),
		Decrypt:  key2(adfgvx.DecryptADFGX),
	},
	{
		Name:     "adfgvx",
		Summary:  "6x6 coordinate substitution plus columnar transposition",
		Info:     "The ADFGX scheme extended to a 6x6 grid covering letters and digits, with coordinates drawn from ADFGVX.",
		KeyNames: []string{"gridkey", "transpositionkey"},
		Encrypt:  key2(adfgvx.EncryptADFGVX),
		Decrypt:  key2(adfgvx.DecryptADFGVX),
	},
	{
		Name:     "vic",
		Summary:  "checkerboard substitution plus columnar transposition with derived keys",
		Info:     "Derives a straddling checkerboard key and a columnar key from a phrase and a date via chain addition and sequencing, substitutes letters for digits and transposes the digit stream. Both sides re-derive the keys; nothing is transmitted.",
		KeyNames: []string{"phrase", "date"},
		Encrypt:  key2(vic.Encrypt),
		Decrypt:  key2(vic.Decrypt),
	},

	// keyless encodings
	{
		Name:    "morse",
		Summary: "international morse code",
		Info:    "One space between letter codes, three spaces between words.",
		Keyless: true,
		Encrypt: keyless(codes.MorseEncode),
		Decrypt: keyless(codes.MorseDecode),
	},
	{
		Name:    "nato",
		Summary: "NATO phonetic alphabet",
		Info:    "Spells each letter as its phonetic word, with / between word groups.",
		Keyless: true,
		Encrypt: keyless(codes.NatoEncode),
		Decrypt: keyless(codes.NatoDecode),
	},
	{
		Name:    "navajo",
		Summary: "WWII Navajo code-talker alphabet",
		Info:    "Spells each letter as its Navajo code word, with / between word groups.",
		Keyless: true,
		Encrypt: keyless(codes.NavajoEncode),
		Decrypt: keyless(codes.NavajoDecode),
	},
	{
		Name:    "a1z26",
		Summary: "letters to positions 1-26",
		Info:    "Numbers each letter by its alphabet position, space-separated.",
		Keyless: true,
		Encrypt: keyless(codes.A1Z26Encode),
		Decrypt: keyless(codes.A1Z26Decode),
	},
	{
		Name:    "tap",
		Summary: "prison tap code",
		Info:    "Each letter becomes two dot groups (row and column of a 5x5 square, K tapped as C) separated by a space, with / between letters.",
		Keyless: true,
		Encrypt: keyless(codes.TapEncode),
		Decrypt: keyless(codes.TapDecode),
	},
	{
		Name:    "t9",
		Summary: "multi-tap phone keypad",
		Info:    "Each letter becomes its keypad digit repeated once per press, letters separated by spaces and words by a 0.",
		Keyless: true,
		Encrypt: keyless(codes.T9Encode),
		Decrypt: keyless(codes.T9Decode),
	},
	{
		Name:    "braille",
		Summary: "Unicode braille patterns",
		Info:    "Maps letters into the U+2800 braille block; decoding drops code points outside it.",
		Keyless: true,
		Encrypt: keyless(codes.BrailleEncode),
		Decrypt: keyless(codes.BrailleDecode),
	},
	{
		Name:    "base2",
		Summary: "bytes as binary groups",
		Info:    "Each input byte as eight binary digits, space-separated.",
		Keyless: true,
		Encrypt: keyless(codes.Base2Encode),
		Decrypt: keyless(codes.Base2Decode),
	},
	{
		Name:    "base8",
		Summary: "bytes as octal groups",
		Info:    "Each input byte as three octal digits, space-separated.",
		Keyless: true,
		Encrypt: keyless(codes.Base8Encode),
		Decrypt: keyless(codes.Base8Decode),
	},
	{
		Name:    "base10",
		Summary: "bytes as decimal values",
		Info:    "Each input byte as its decimal value, space-separated.",
		Keyless: true,
		Encrypt: keyless(codes.Base10Encode),
		Decrypt: keyless(codes.Base10Decode),
	},
	{
		Name:    "base16",
		Summary: "lowercase hexadecimal",
		Info:    "The input bytes in lowercase hexadecimal.",
		Keyless: true,
		Encrypt: keyless(codes.Base16Encode),
		Decrypt: keyless(codes.Base16Decode),
	},
	{
		Name:    "base32",
		Summary: "RFC 4648 base32",
		Info:    "The standard base32 alphabet with = padding.",
		Keyless: true,
		Encrypt: keyless(codes.Base32Encode),
		Decrypt: keyless(codes.Base32Decode),
	},
	{
		Name:    "base64",
		Summary: "RFC 4648 base64",
		Info:    "The standard base64 alphabet with = padding.",
		Keyless: true,
		Encrypt: keyless(codes.Base64Encode),
		Decrypt: keyless(codes.Base64Decode),
	},
	{
		Name:    "url",
		Summary: "percent-encoding",
		Info:    "Percent-encodes the input as a URL query component.",
		Keyless: true,
		Encrypt: keyless(codes.URLEncode),
		Decrypt: keyless(codes.URLDecode),
	},
	{
		Name:    "altcode",
		Summary: "decimal code points",
		Info:    "Each character's code point as a decimal number, space-separated.",
		Keyless: true,
		Encrypt: keyless(codes.AltCodeEncode),
		Decrypt: keyless(codes.AltCodeDecode),
	},
}
