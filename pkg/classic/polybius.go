// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import "strconv"

// StandardPolybiusAlphabet is the default 25-letter grid (J is merged into I).
const StandardPolybiusAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

const polybiusSize = 5

// Polybius encodes each letter as its 1-based row and column in a 5x5 grid:
//
//	  1 2 3 4 5
//	1 A B C D E
//	2 F G H I K
//	3 L M N O P
//	4 Q R S T U
//	5 V W X Y Z
//
// Letters are case-insensitive and J is encoded as I. Decryption yields
// upper-case letters, so only upper-case plaintext without J or digits
// survives a round trip unchanged.
type Polybius struct {
	grid      [polybiusSize][polybiusSize]byte
	index     [alphabetSize]int // letter -> row*5+col, -1 if absent
	separator string
}

// NewPolybius creates a Polybius square with the standard alphabet.
func NewPolybius() *Polybius {
	p, _ := NewPolybiusWithAlphabet(StandardPolybiusAlphabet)
	return p
}

// NewPolybiusWithAlphabet creates a Polybius square filled row by row from
// alphabet.
//
// The alphabet must hold exactly 25 distinct ASCII letters (case is
// ignored); otherwise ErrInvalidAlphabet is returned.
func NewPolybiusWithAlphabet(alphabet string) (*Polybius, error) {
	if len(alphabet) != polybiusSize*polybiusSize {
		return nil, ErrInvalidAlphabet.WithDetails("got " + strconv.Itoa(len(alphabet)) + " characters")
	}

	p := &Polybius{}
	for i := range p.index {
		p.index[i] = -1
	}

	for i := 0; i < len(alphabet); i++ {
		c := toUpper(alphabet[i])
		if !isLetter(c) {
			return nil, ErrInvalidAlphabet.WithDetails("non-letter " + strconv.QuoteRune(rune(alphabet[i])))
		}
		if p.index[c-'A'] >= 0 {
			return nil, ErrInvalidAlphabet.WithDetails("duplicate letter " + string(c))
		}
		p.index[c-'A'] = i
		p.grid[i/polybiusSize][i%polybiusSize] = c
	}

	return p, nil
}

// NewPolybiusWithKey creates a keyed Polybius square: the letters of key
// (J folded into I, duplicates and non-letters dropped) followed by the rest
// of the alphabet.
func NewPolybiusWithKey(key string) *Polybius {
	var seen [alphabetSize]bool
	alphabet := make([]byte, 0, polybiusSize*polybiusSize)

	add := func(c byte) {
		c = toUpper(c)
		if !isLetter(c) {
			return
		}
		if c == 'J' {
			c = 'I'
		}
		if !seen[c-'A'] {
			seen[c-'A'] = true
			alphabet = append(alphabet, c)
		}
	}

	for i := 0; i < len(key); i++ {
		add(key[i])
	}
	for c := byte('A'); c <= 'Z'; c++ {
		add(c)
	}

	// 25 distinct letters by construction.
	p, _ := NewPolybiusWithAlphabet(string(alphabet))
	return p
}

// WithSeparator returns a copy that writes sep between adjacent coordinate pairs.
func (p *Polybius) WithSeparator(sep string) *Polybius {
	cp := *p
	cp.separator = sep
	return &cp
}

// Type returns the cipher type.
func (p *Polybius) Type() CipherType {
	return CipherPolybius
}

// Separator returns the pair separator.
func (p *Polybius) Separator() string {
	return p.separator
}

// Encrypt replaces every letter with its two-digit coordinate.
func (p *Polybius) Encrypt(plaintext []byte) []byte {
	out := make([]byte, 0, len(plaintext)*2)
	prevPair := false
	for _, c := range plaintext {
		pos, ok := p.lookup(c)
		if !ok {
			out = append(out, c)
			prevPair = false
			continue
		}
		if prevPair {
			out = append(out, p.separator...)
		}
		out = append(out, byte('1'+pos/polybiusSize), byte('1'+pos%polybiusSize))
		prevPair = true
	}
	return out
}

// Decrypt turns digit pairs back into grid letters and drops separators.
// Digit pairs outside 1-5 and all other bytes are kept.
func (p *Polybius) Decrypt(ciphertext []byte) []byte {
	out := make([]byte, 0, len(ciphertext))
	sep := p.separator
	for i := 0; i < len(ciphertext); {
		if sep != "" && hasPrefixAt(ciphertext, i, sep) {
			i += len(sep)
			continue
		}

		c := ciphertext[i]
		if isDigit(c) && i+1 < len(ciphertext) && isDigit(ciphertext[i+1]) {
			row, col := int(c-'1'), int(ciphertext[i+1]-'1')
			if row >= 0 && row < polybiusSize && col >= 0 && col < polybiusSize {
				out = append(out, p.grid[row][col])
			} else {
				out = append(out, c, ciphertext[i+1])
			}
			i += 2
			continue
		}

		out = append(out, c)
		i++
	}
	return out
}

// EncryptString encrypts a string.
func (p *Polybius) EncryptString(plaintext string) string {
	return string(p.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (p *Polybius) DecryptString(ciphertext string) string {
	return string(p.Decrypt([]byte(ciphertext)))
}

// lookup returns the grid position of a letter, folding J into I when J
// is not part of the grid.
func (p *Polybius) lookup(c byte) (int, bool) {
	if !isLetter(c) {
		return 0, false
	}
	c = toUpper(c)
	pos := p.index[c-'A']
	if pos < 0 && c == 'J' {
		pos = p.index['I'-'A']
	}
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func hasPrefixAt(b []byte, i int, prefix string) bool {
	if len(b)-i < len(prefix) {
		return false
	}
	return string(b[i:i+len(prefix)]) == prefix
}
