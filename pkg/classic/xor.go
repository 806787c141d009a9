// Package classic provides classical ciphers behind a uniform byte contract.
package classic

// Xor combines every byte with a repeating key using exclusive-or.
//
// Unlike the alphabetic ciphers it rewrites every byte, so its ciphertext
// is raw binary and generally not valid text.
type Xor struct {
	key []byte
}

// NewXor creates an XOR cipher. The key is copied.
//
// It returns ErrEmptyKey if key is empty.
func NewXor(key []byte) (*Xor, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	k := make([]byte, len(key))
	copy(k, key)
	return &Xor{key: k}, nil
}

// NewXorWithStringKey creates an XOR cipher keyed by the UTF-8 bytes of key.
func NewXorWithStringKey(key string) (*Xor, error) {
	return NewXor([]byte(key))
}

// Type returns the cipher type.
func (x *Xor) Type() CipherType {
	return CipherXor
}

// Key returns a copy of the key.
func (x *Xor) Key() []byte {
	k := make([]byte, len(x.key))
	copy(k, x.key)
	return k
}

// Encrypt XORs plaintext with the repeating key.
func (x *Xor) Encrypt(plaintext []byte) []byte {
	return x.apply(plaintext)
}

// Decrypt XORs ciphertext with the repeating key.
func (x *Xor) Decrypt(ciphertext []byte) []byte {
	return x.apply(ciphertext)
}

// EncryptString encrypts the UTF-8 bytes of plaintext.
func (x *Xor) EncryptString(plaintext string) []byte {
	return x.apply([]byte(plaintext))
}

// DecryptString decrypts ciphertext and interprets the result as text.
//
// It returns ErrInvalidText if the recovered bytes are not valid UTF-8;
// invalid sequences are never replaced.
func (x *Xor) DecryptString(ciphertext []byte) (string, error) {
	return toText(x.apply(ciphertext))
}

func (x *Xor) apply(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = b ^ x.key[i%len(x.key)]
	}
	return out
}
