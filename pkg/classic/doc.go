// Package classic provides classical (pre-modern) ciphers for cipherkit.
//
// This package implements textbook substitution and repeating-key ciphers
// behind a single Cipher abstraction. None of them offer any security; they
// exist to demonstrate the transformations.
//
// Supported Algorithms:
//
//   - Caesar: fixed rotation over A-Z/a-z (ROT13 is shift 13)
//   - Vigenère: keyword-driven rotation, advancing only on letters
//   - Atbash: alphabet reversal, self-inverse
//   - XOR: repeating-key exclusive-or over raw bytes, self-inverse
//   - Affine: E(x) = (ax + b) mod 26
//   - Polybius: 5x5 grid coordinates (I/J merged)
//   - Magic Square: planetary magic square coordinates
//
// Features:
//
//   - Byte Contract: every cipher maps []byte to []byte; alphabetic ciphers
//     only rewrite ASCII letters, so UTF-8 text stays valid
//   - Immutability: parameters are fixed at construction and all methods
//     are safe for concurrent use
//   - Fail Fast: invalid parameters are rejected by the constructors
//   - Composition: Chain applies several ciphers in sequence
//
// Usage:
//
//	c := classic.NewCaesar(3)
//	ct := c.EncryptString("HELLO") // "KHOOR"
//
//	x, err := classic.NewXorWithStringKey("KEY")
//	raw := x.EncryptString("Hello")
//	pt, err := x.DecryptString(raw)
package classic
