// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import (
	"strings"
)

// Config describes a cipher by type and parameters so it can be built by
// name, e.g. from a configuration file or command-line flags.
//
// Only the fields relevant to Type are read.
type Config struct {
	// Type is the cipher type.
	Type CipherType `koanf:"type" yaml:"type" json:"type"`

	// Shift is the Caesar rotation.
	Shift int `koanf:"shift" yaml:"shift,omitempty" json:"shift,omitempty"`

	// Keyword is the Vigenère keyword or the Polybius grid key.
	Keyword string `koanf:"keyword" yaml:"keyword,omitempty" json:"keyword,omitempty"`

	// Key is the XOR key (text, used as UTF-8 bytes).
	Key string `koanf:"key" yaml:"key,omitempty" json:"key,omitempty"`

	// A and B are the affine multiplier and offset.
	A int `koanf:"a" yaml:"a,omitempty" json:"a,omitempty"`
	B int `koanf:"b" yaml:"b,omitempty" json:"b,omitempty"`

	// Alphabet is a custom 25-letter Polybius alphabet.
	Alphabet string `koanf:"alphabet" yaml:"alphabet,omitempty" json:"alphabet,omitempty"`

	// Separator is written between coordinate pairs (Polybius, magic square).
	Separator string `koanf:"separator" yaml:"separator,omitempty" json:"separator,omitempty"`

	// CoordSeparator is written between row and column (magic square).
	CoordSeparator string `koanf:"coord_separator" yaml:"coord_separator,omitempty" json:"coord_separator,omitempty"`

	// Planet names the magic square (saturn ... moon).
	Planet string `koanf:"planet" yaml:"planet,omitempty" json:"planet,omitempty"`
}

// NewWithType creates a cipher of the configured type.
func NewWithType(cfg Config) (Cipher, error) {
	var (
		c   Cipher
		err error
	)

	switch CipherType(strings.ToLower(string(cfg.Type))) {
	case CipherCaesar:
		c = NewCaesar(cfg.Shift)
	case CipherROT13:
		c = ROT13()
	case CipherVigenere:
		c, err = asCipher(NewVigenere(cfg.Keyword))
	case CipherAtbash:
		c = NewAtbash()
	case CipherXor:
		c, err = asCipher(NewXorWithStringKey(cfg.Key))
	case CipherAffine:
		c, err = asCipher(NewAffine(cfg.A, cfg.B))
	case CipherPolybius:
		c, err = asCipher(newPolybiusFromConfig(cfg))
	case CipherMagicSquare:
		c, err = asCipher(newMagicSquareFromConfig(cfg))
	default:
		err = ErrUnknownCipher.WithDetails(string(cfg.Type))
	}

	if err != nil {
		return nil, err
	}
	return c, nil
}

// asCipher drops the concrete type so a failed constructor never yields a
// non-nil interface holding a nil pointer.
func asCipher[T Cipher](c T, err error) (Cipher, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newPolybiusFromConfig(cfg Config) (*Polybius, error) {
	var p *Polybius
	switch {
	case cfg.Alphabet != "":
		var err error
		p, err = NewPolybiusWithAlphabet(cfg.Alphabet)
		if err != nil {
			return nil, err
		}
	case cfg.Keyword != "":
		p = NewPolybiusWithKey(cfg.Keyword)
	default:
		p = NewPolybius()
	}

	if cfg.Separator != "" {
		p = p.WithSeparator(cfg.Separator)
	}
	return p, nil
}

func newMagicSquareFromConfig(cfg Config) (*MagicSquare, error) {
	planet := Saturn
	if cfg.Planet != "" {
		var err error
		planet, err = ParsePlanet(cfg.Planet)
		if err != nil {
			return nil, err
		}
	}

	m := NewMagicSquare(planet)
	if cfg.Separator != "" {
		m = m.WithSeparator(cfg.Separator)
	}
	if cfg.CoordSeparator != "" {
		m = m.WithCoordSeparator(cfg.CoordSeparator)
	}
	return m, nil
}
