package classic

import (
	"errors"
	"testing"
)

func TestNewChain_Empty(t *testing.T) {
	if _, err := NewChain(); !errors.Is(err, ErrEmptyChain) {
		t.Errorf("NewChain() error = %v, want ErrEmptyChain", err)
	}
}

func TestChain_Order(t *testing.T) {
	v, err := NewVigenere("KEY")
	if err != nil {
		t.Fatalf("NewVigenere() error = %v", err)
	}

	ch, err := NewChain(NewCaesar(3), v, NewAtbash())
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}

	want := NewAtbash().EncryptString(v.EncryptString(NewCaesar(3).EncryptString("Hello, World")))
	if got := EncryptText(ch, "Hello, World"); got != want {
		t.Errorf("EncryptText() = %q, want %q", got, want)
	}

	back, err := DecryptText(ch, want)
	if err != nil {
		t.Fatalf("DecryptText() error = %v", err)
	}
	if back != "Hello, World" {
		t.Errorf("DecryptText() = %q, want %q", back, "Hello, World")
	}

	if ch.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ch.Len())
	}
	types := ch.Types()
	if types[0] != CipherCaesar || types[1] != CipherVigenere || types[2] != CipherAtbash {
		t.Errorf("Types() = %v", types)
	}
	if ch.Type() != CipherChain {
		t.Errorf("Type() = %s, want %s", ch.Type(), CipherChain)
	}
}

func TestChain_WithXor(t *testing.T) {
	x, err := NewXorWithStringKey("secret")
	if err != nil {
		t.Fatalf("NewXorWithStringKey() error = %v", err)
	}

	// Alphabetic ciphers after XOR still round-trip because they are
	// bijections on bytes.
	ch, err := NewChain(ROT13(), x, NewAtbash())
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}

	const msg = "Attack at dawn"
	got, err := DecryptText(ch, EncryptText(ch, msg))
	if err != nil {
		t.Fatalf("DecryptText() error = %v", err)
	}
	if got != msg {
		t.Errorf("round trip = %q, want %q", got, msg)
	}
}
