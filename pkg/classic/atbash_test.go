package classic

import "testing"

func TestAtbash_Encrypt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABC", "ZYX"},
		{"XYZ", "CBA"},
		{"AbCdEf", "ZyXwVu"},
		{"Hello, World! 123", "Svool, Dliow! 123"},
		{"", ""},
	}

	a := NewAtbash()
	for _, tt := range tests {
		if got := a.EncryptString(tt.in); got != tt.want {
			t.Errorf("EncryptString(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := a.DecryptString(tt.want); got != tt.in {
			t.Errorf("DecryptString(%q) = %q, want %q", tt.want, got, tt.in)
		}
	}
}

func TestAtbash_Involution(t *testing.T) {
	a := NewAtbash()
	for c := 0; c < 256; c++ {
		in := []byte{byte(c)}
		if got := a.Encrypt(a.Encrypt(in)); got[0] != in[0] {
			t.Errorf("Encrypt(Encrypt(%#x)) = %#x", in[0], got[0])
		}
	}
}

func TestAtbash_EncryptEqualsDecrypt(t *testing.T) {
	a := NewAtbash()
	const text = "Sphinx of black quartz, judge my vow."
	if a.EncryptString(text) != a.DecryptString(text) {
		t.Error("Encrypt and Decrypt should be the same transform")
	}
	if a.Type() != CipherAtbash {
		t.Errorf("Type() = %s, want %s", a.Type(), CipherAtbash)
	}
}
