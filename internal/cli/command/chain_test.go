package command

import (
	"testing"

	"github.com/yndnr/cipherkit/pkg/classic"
)

func TestChainCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"caesar then atbash", []string{"chain", "encrypt", "--step", "caesar:3", "--step", "atbash", "HELLO"}, "PSLLI"},
		{"reverse", []string{"chain", "decrypt", "--step", "caesar:3", "--step", "atbash", "PSLLI"}, "HELLO"},
		{"xor step encodes", []string{"chain", "encrypt", "-s", "rot13", "-s", "xor:key", "Hello"}, "3e17001207"},
		{"xor step decodes", []string{"chain", "decrypt", "-s", "rot13", "-s", "xor:key", "3e17001207"}, "Hello"},
		{"affine", []string{"chain", "encrypt", "-s", "affine:5:8", "HELLO"}, "RCLLA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			if res.err != nil {
				t.Fatalf("Run() error = %v", res.err)
			}
			if res.stdout != tt.want+"\n" {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want+"\n")
			}
		})
	}
}

func TestChainCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no steps", []string{"chain", "encrypt", "HELLO"}},
		{"bad step", []string{"chain", "encrypt", "--step", "caesar:x", "HELLO"}},
		{"unknown step", []string{"chain", "encrypt", "--step", "enigma", "HELLO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := runCLI(t, "", tt.args...); res.err == nil {
				t.Error("Run() should return error")
			}
		})
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		step    string
		want    classic.Config
		wantErr bool
	}{
		{"caesar:-2", classic.Config{Type: classic.CipherCaesar, Shift: -2}, false},
		{"ROT13", classic.Config{Type: classic.CipherROT13}, false},
		{"vigenere:LEMON", classic.Config{Type: classic.CipherVigenere, Keyword: "LEMON"}, false},
		{"xor:a:b", classic.Config{Type: classic.CipherXor, Key: "a:b"}, false},
		{"affine:5:8", classic.Config{Type: classic.CipherAffine, A: 5, B: 8}, false},
		{"polybius", classic.Config{Type: classic.CipherPolybius}, false},
		{"polybius:KEYWORD", classic.Config{Type: classic.CipherPolybius, Keyword: "KEYWORD"}, false},
		{"magic-square:mars", classic.Config{Type: classic.CipherMagicSquare, Planet: "mars"}, false},
		{"caesar", classic.Config{}, true},
		{"affine:5", classic.Config{}, true},
		{"atbash:x", classic.Config{}, true},
		{"enigma", classic.Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			got, err := parseStep(tt.step)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStep(%q) error = %v, wantErr %v", tt.step, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseStep(%q) = %+v, want %+v", tt.step, got, tt.want)
			}
		})
	}
}
