package classic

import (
	"errors"
	"testing"
)

func TestNewAffine_Keys(t *testing.T) {
	for _, a := range []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25, -1, 27} {
		if _, err := NewAffine(a, 0); err != nil {
			t.Errorf("NewAffine(%d, 0) error = %v", a, err)
		}
	}

	for _, a := range []int{0, 2, 4, 6, 8, 10, 12, 13, 14, 26, -2} {
		if _, err := NewAffine(a, 5); !errors.Is(err, ErrInvalidAffineKey) {
			t.Errorf("NewAffine(%d, 5) error = %v, want ErrInvalidAffineKey", a, err)
		}
	}
}

func TestNewAffine_Normalize(t *testing.T) {
	f, err := NewAffine(31, -1)
	if err != nil {
		t.Fatalf("NewAffine() error = %v", err)
	}
	if f.A() != 5 || f.B() != 25 {
		t.Errorf("A(), B() = %d, %d, want 5, 25", f.A(), f.B())
	}
}

func TestAffine_EncryptDecrypt(t *testing.T) {
	tests := []struct {
		name       string
		a, b       int
		plaintext  string
		ciphertext string
	}{
		{"Basic", 5, 8, "HELLO", "RCLLA"},
		{"Preserves case", 5, 8, "HeLLo", "RcLLa"},
		{"Preserves non-alpha", 5, 8, "Hello, World! 123", "Rclla, Oaplx! 123"},
		{"Caesar special case", 1, 3, "ABC", "DEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewAffine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("NewAffine() error = %v", err)
			}
			if got := f.EncryptString(tt.plaintext); got != tt.ciphertext {
				t.Errorf("EncryptString(%q) = %q, want %q", tt.plaintext, got, tt.ciphertext)
			}
			if got := f.DecryptString(tt.ciphertext); got != tt.plaintext {
				t.Errorf("DecryptString(%q) = %q, want %q", tt.ciphertext, got, tt.plaintext)
			}
		})
	}
}

func TestAffine_RoundTripAllKeys(t *testing.T) {
	const text = "The Quick Brown Fox Jumps Over The Lazy Dog"
	for _, a := range []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25} {
		for b := -26; b <= 26; b += 7 {
			f, err := NewAffine(a, b)
			if err != nil {
				t.Fatalf("NewAffine(%d, %d) error = %v", a, b, err)
			}
			if got := f.DecryptString(f.EncryptString(text)); got != text {
				t.Errorf("NewAffine(%d, %d) round trip = %q", a, b, got)
			}
		}
	}
}

func TestAffineCaesar(t *testing.T) {
	if got := AffineCaesar(3).EncryptString("ABC"); got != "DEF" {
		t.Errorf("AffineCaesar(3) = %q, want DEF", got)
	}
	if got := AffineROT13().EncryptString("HELLO"); got != "URYYB" {
		t.Errorf("AffineROT13() = %q, want URYYB", got)
	}
	if got := AffineROT13().EncryptString("URYYB"); got != "HELLO" {
		t.Errorf("AffineROT13() = %q, want HELLO", got)
	}
	if got := AffineCaesar(-3).EncryptString("DEF"); got != NewCaesar(-3).EncryptString("DEF") {
		t.Errorf("AffineCaesar(-3) = %q, want Caesar result", got)
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m   int
		want   int
		wantOK bool
	}{
		{5, 26, 21, true},
		{7, 26, 15, true},
		{25, 26, 25, true},
		{1, 26, 1, true},
		{-1, 26, 25, true},
		{2, 26, 0, false},
		{13, 26, 0, false},
		{0, 26, 0, false},
	}

	for _, tt := range tests {
		got, ok := modInverse(tt.a, tt.m)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("modInverse(%d, %d) = %d, %v, want %d, %v", tt.a, tt.m, got, ok, tt.want, tt.wantOK)
		}
	}
}
