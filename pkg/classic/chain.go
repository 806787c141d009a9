// Package classic provides classical ciphers behind a uniform byte contract.
package classic

// Chain applies several ciphers in sequence.
//
// Encrypt runs each cipher's Encrypt in order; Decrypt runs each cipher's
// Decrypt in reverse order, so a chain round-trips whenever every member does.
type Chain struct {
	ciphers []Cipher
}

// NewChain creates a chain. It returns ErrEmptyChain if no cipher is given.
func NewChain(ciphers ...Cipher) (*Chain, error) {
	if len(ciphers) == 0 {
		return nil, ErrEmptyChain
	}

	cs := make([]Cipher, len(ciphers))
	copy(cs, ciphers)
	return &Chain{ciphers: cs}, nil
}

// Type returns the cipher type.
func (ch *Chain) Type() CipherType {
	return CipherChain
}

// Len returns the number of ciphers in the chain.
func (ch *Chain) Len() int {
	return len(ch.ciphers)
}

// Types returns the member cipher types in application order.
func (ch *Chain) Types() []CipherType {
	types := make([]CipherType, len(ch.ciphers))
	for i, c := range ch.ciphers {
		types[i] = c.Type()
	}
	return types
}

// Encrypt applies every cipher's Encrypt in order.
func (ch *Chain) Encrypt(plaintext []byte) []byte {
	out := plaintext
	for _, c := range ch.ciphers {
		out = c.Encrypt(out)
	}
	return out
}

// Decrypt applies every cipher's Decrypt in reverse order.
func (ch *Chain) Decrypt(ciphertext []byte) []byte {
	out := ciphertext
	for i := len(ch.ciphers) - 1; i >= 0; i-- {
		out = ch.ciphers[i].Decrypt(out)
	}
	return out
}
