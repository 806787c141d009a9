// Package classic provides classical ciphers behind a uniform byte contract.
//
// Every cipher maps bytes to bytes. Alphabetic ciphers touch only the ASCII
// letters A-Z and a-z, so any other byte (including UTF-8 continuation bytes)
// passes through untouched.
package classic

import (
	"strconv"
	"unicode/utf8"
)

// CipherType identifies the cipher algorithm.
type CipherType string

const (
	CipherCaesar      CipherType = "caesar"
	CipherROT13       CipherType = "rot13"
	CipherVigenere    CipherType = "vigenere"
	CipherAtbash      CipherType = "atbash"
	CipherXor         CipherType = "xor"
	CipherAffine      CipherType = "affine"
	CipherPolybius    CipherType = "polybius"
	CipherMagicSquare CipherType = "magic-square"
	CipherChain       CipherType = "chain"
)

// Cipher transforms byte sequences in both directions.
//
// For every valid instance and every input in the cipher's domain,
// Decrypt(Encrypt(x)) equals x.
type Cipher interface {
	// Type returns the cipher type.
	Type() CipherType

	// Encrypt transforms plaintext into ciphertext.
	Encrypt(plaintext []byte) []byte

	// Decrypt transforms ciphertext back into plaintext.
	Decrypt(ciphertext []byte) []byte
}

// Types returns every cipher type NewWithType can build, in display order.
func Types() []CipherType {
	return []CipherType{
		CipherCaesar,
		CipherROT13,
		CipherVigenere,
		CipherAtbash,
		CipherXor,
		CipherAffine,
		CipherPolybius,
		CipherMagicSquare,
	}
}

// ParseType converts a name into a CipherType.
func ParseType(name string) (CipherType, error) {
	for _, t := range Types() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", ErrUnknownCipher.WithDetails(name)
}

// EncryptText encrypts a string and returns the ciphertext as a string.
//
// The result of a byte-level cipher such as XOR may not be valid UTF-8.
func EncryptText(c Cipher, plaintext string) string {
	return string(c.Encrypt([]byte(plaintext)))
}

// DecryptText decrypts a string and returns the recovered text.
//
// It returns ErrInvalidText if the recovered bytes are not valid UTF-8.
func DecryptText(c Cipher, ciphertext string) (string, error) {
	return toText(c.Decrypt([]byte(ciphertext)))
}

// toText validates b as UTF-8 and converts it to a string.
func toText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidText.WithDetails(invalidOffset(b))
	}
	return string(b), nil
}

// invalidOffset describes the position of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) string {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "invalid sequence at byte " + strconv.Itoa(i)
		}
		i += size
	}
	return "invalid sequence"
}

const alphabetSize = 26

// mod returns n modulo m in the range [0, m), also for negative n.
func mod(n, m int) int {
	return ((n % m) + m) % m
}

// letterBase returns 'A' or 'a' for ASCII letters.
func letterBase(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return 'A', true
	case b >= 'a' && b <= 'z':
		return 'a', true
	default:
		return 0, false
	}
}

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	_, ok := letterBase(b)
	return ok
}

// toUpper upper-cases an ASCII letter and leaves other bytes alone.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// shiftLetter rotates an ASCII letter forward by shift positions,
// preserving case. Other bytes are returned unchanged.
func shiftLetter(b byte, shift int) byte {
	base, ok := letterBase(b)
	if !ok {
		return b
	}
	return base + byte(mod(int(b-base)+shift, alphabetSize))
}

// mapBytes applies fn to every byte of in and returns a new slice.
func mapBytes(in []byte, fn func(byte) byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = fn(b)
	}
	return out
}
