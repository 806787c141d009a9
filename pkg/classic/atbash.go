// Package classic provides classical ciphers behind a uniform byte contract.
package classic

// Atbash maps each letter to its mirror in the alphabet (A<->Z, b<->y).
//
// The transform is its own inverse, so Encrypt and Decrypt are identical.
type Atbash struct{}

// NewAtbash creates an Atbash cipher.
func NewAtbash() Atbash {
	return Atbash{}
}

// Type returns the cipher type.
func (Atbash) Type() CipherType {
	return CipherAtbash
}

// Encrypt mirrors every letter.
func (a Atbash) Encrypt(plaintext []byte) []byte {
	return mapBytes(plaintext, mirrorLetter)
}

// Decrypt mirrors every letter.
func (a Atbash) Decrypt(ciphertext []byte) []byte {
	return a.Encrypt(ciphertext)
}

// EncryptString encrypts a string.
func (a Atbash) EncryptString(plaintext string) string {
	return string(a.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (a Atbash) DecryptString(ciphertext string) string {
	return a.EncryptString(ciphertext)
}

func mirrorLetter(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return 'Z' - (b - 'A')
	case b >= 'a' && b <= 'z':
		return 'z' - (b - 'a')
	default:
		return b
	}
}
