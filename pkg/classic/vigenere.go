// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import "strconv"

// Vigenere shifts each letter by the value of the current keyword letter.
//
// The keyword position advances only when a letter is processed, so
// punctuation and whitespace never desynchronize the key stream.
type Vigenere struct {
	keyword string
	shifts  []int
}

// NewVigenere creates a Vigenère cipher.
//
// Only ASCII letters of keyword are kept (upper-cased); everything else is
// discarded. It returns ErrEmptyKeyword if no letter remains.
func NewVigenere(keyword string) (*Vigenere, error) {
	letters := make([]byte, 0, len(keyword))
	shifts := make([]int, 0, len(keyword))
	for i := 0; i < len(keyword); i++ {
		b := keyword[i]
		if !isLetter(b) {
			continue
		}
		b = toUpper(b)
		letters = append(letters, b)
		shifts = append(shifts, int(b-'A'))
	}

	if len(shifts) == 0 {
		return nil, ErrEmptyKeyword.WithDetails("got " + strconv.Quote(keyword))
	}

	return &Vigenere{
		keyword: string(letters),
		shifts:  shifts,
	}, nil
}

// Type returns the cipher type.
func (v *Vigenere) Type() CipherType {
	return CipherVigenere
}

// Keyword returns the normalized (upper-case, letters only) keyword.
func (v *Vigenere) Keyword() string {
	return v.keyword
}

// Shifts returns a copy of the per-position shift values (A=0 ... Z=25).
func (v *Vigenere) Shifts() []int {
	out := make([]int, len(v.shifts))
	copy(out, v.shifts)
	return out
}

// Encrypt shifts letters forward along the key stream.
func (v *Vigenere) Encrypt(plaintext []byte) []byte {
	return v.transform(plaintext, 1)
}

// Decrypt shifts letters backward along the key stream.
func (v *Vigenere) Decrypt(ciphertext []byte) []byte {
	return v.transform(ciphertext, -1)
}

// EncryptString encrypts a string.
func (v *Vigenere) EncryptString(plaintext string) string {
	return string(v.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (v *Vigenere) DecryptString(ciphertext string) string {
	return string(v.Decrypt([]byte(ciphertext)))
}

// transform walks the input once; direction is +1 to encrypt and -1 to decrypt.
func (v *Vigenere) transform(in []byte, direction int) []byte {
	out := make([]byte, len(in))
	pos := 0
	for i, b := range in {
		if !isLetter(b) {
			out[i] = b
			continue
		}
		out[i] = shiftLetter(b, direction*v.shifts[pos])
		pos = (pos + 1) % len(v.shifts)
	}
	return out
}
