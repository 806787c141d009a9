// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import "strconv"

// Affine maps each letter x to (a*x + b) mod 26.
//
// Decryption uses the modular inverse of a: x = a⁻¹(y - b) mod 26, which
// only exists when a is coprime with 26.
type Affine struct {
	a    int
	aInv int
	b    int
}

// NewAffine creates an affine cipher.
//
// Valid multipliers are 1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23 and 25 (or any
// integer congruent to one of them). Any other a returns ErrInvalidAffineKey.
func NewAffine(a, b int) (*Affine, error) {
	aInv, ok := modInverse(a, alphabetSize)
	if !ok {
		return nil, ErrInvalidAffineKey.WithDetails("a=" + strconv.Itoa(a))
	}

	return &Affine{
		a:    mod(a, alphabetSize),
		aInv: aInv,
		b:    mod(b, alphabetSize),
	}, nil
}

// AffineCaesar creates the affine special case a=1, which is a Caesar shift.
func AffineCaesar(shift int) *Affine {
	return &Affine{a: 1, aInv: 1, b: mod(shift, alphabetSize)}
}

// AffineROT13 creates the affine special case a=1, b=13.
func AffineROT13() *Affine {
	return AffineCaesar(13)
}

// Type returns the cipher type.
func (f *Affine) Type() CipherType {
	return CipherAffine
}

// A returns the normalized multiplier.
func (f *Affine) A() int {
	return f.a
}

// B returns the normalized offset.
func (f *Affine) B() int {
	return f.b
}

// Encrypt applies (a*x + b) mod 26 to every letter.
func (f *Affine) Encrypt(plaintext []byte) []byte {
	return mapBytes(plaintext, func(c byte) byte {
		base, ok := letterBase(c)
		if !ok {
			return c
		}
		x := int(c - base)
		return base + byte(mod(f.a*x+f.b, alphabetSize))
	})
}

// Decrypt applies a⁻¹(y - b) mod 26 to every letter.
func (f *Affine) Decrypt(ciphertext []byte) []byte {
	return mapBytes(ciphertext, func(c byte) byte {
		base, ok := letterBase(c)
		if !ok {
			return c
		}
		y := int(c - base)
		return base + byte(mod(f.aInv*(y-f.b), alphabetSize))
	})
}

// EncryptString encrypts a string.
func (f *Affine) EncryptString(plaintext string) string {
	return string(f.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (f *Affine) DecryptString(ciphertext string) string {
	return string(f.Decrypt([]byte(ciphertext)))
}

// modInverse returns the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. ok is false when gcd(a, m) != 1.
func modInverse(a, m int) (inv int, ok bool) {
	oldR, r := mod(a, m), m
	oldS, s := 1, 0

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, false
	}
	return mod(oldS, m), true
}
