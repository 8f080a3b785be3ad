// Package cryptarch is a toolkit of classical ciphers and text encodings:
// substitution, transposition and fractionation schemes from Caesar to VIC,
// plus keyless encodings like Morse, NATO and Base64.
//
// Every transform is a pure function of its inputs. Ciphers expose
// encrypt/decrypt pairs, encodings expose encode/decode pairs, and the
// registry binds them to names for the cryptarch command line tool.
//
// None of these are secure against modern cryptanalysis. They are teaching
// and puzzle ciphers.
package cryptarch
