package metric

import (
	"time"

	"github.com/yndnr/cipherkit/pkg/classic"
)

// instrumented records metrics around every call of the wrapped cipher.
type instrumented struct {
	classic.Cipher
	r *Registry
}

// Instrument wraps c so that each Encrypt and Decrypt call is recorded in r.
// A nil registry returns c unchanged.
func Instrument(c classic.Cipher, r *Registry) classic.Cipher {
	if r == nil {
		return c
	}
	return &instrumented{Cipher: c, r: r}
}

func (i *instrumented) Encrypt(plaintext []byte) []byte {
	start := time.Now()
	out := i.Cipher.Encrypt(plaintext)
	i.r.Observe(string(i.Cipher.Type()), OpEncrypt, len(plaintext), time.Since(start))
	return out
}

func (i *instrumented) Decrypt(ciphertext []byte) []byte {
	start := time.Now()
	out := i.Cipher.Decrypt(ciphertext)
	i.r.Observe(string(i.Cipher.Type()), OpDecrypt, len(ciphertext), time.Since(start))
	return out
}
