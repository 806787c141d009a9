// Package classic provides classical ciphers behind a uniform byte contract.
package classic

// Caesar rotates every ASCII letter by a fixed shift.
type Caesar struct {
	shift int
}

// NewCaesar creates a Caesar cipher.
//
// Any integer is accepted; the shift is normalized into [0, 26), so -1
// becomes 25.
func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: mod(shift, alphabetSize)}
}

// ROT13 creates a Caesar cipher with shift 13.
func ROT13() *Caesar {
	return NewCaesar(13)
}

// Type returns the cipher type. A shift of 13 reports CipherROT13.
func (c *Caesar) Type() CipherType {
	if c.shift == 13 {
		return CipherROT13
	}
	return CipherCaesar
}

// Shift returns the normalized shift.
func (c *Caesar) Shift() int {
	return c.shift
}

// Encrypt rotates letters forward by the shift.
func (c *Caesar) Encrypt(plaintext []byte) []byte {
	return c.rotate(plaintext, c.shift)
}

// Decrypt rotates letters backward by the shift.
func (c *Caesar) Decrypt(ciphertext []byte) []byte {
	return c.rotate(ciphertext, alphabetSize-c.shift)
}

// EncryptString encrypts a string.
func (c *Caesar) EncryptString(plaintext string) string {
	return string(c.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (c *Caesar) DecryptString(ciphertext string) string {
	return string(c.Decrypt([]byte(ciphertext)))
}

func (c *Caesar) rotate(in []byte, shift int) []byte {
	return mapBytes(in, func(b byte) byte {
		return shiftLetter(b, shift)
	})
}
