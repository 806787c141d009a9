// Package command provides CLI command definitions for cipherkit.
package command

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/pkg/classic"
)

// cipherInfo describes one supported cipher type.
type cipherInfo struct {
	Type        string   `json:"type" yaml:"type"`
	Params      []string `json:"params" yaml:"params"`
	Description string   `json:"description" yaml:"description"`
}

type cipherList []cipherInfo

// Text implements output.Texter.
func (l cipherList) Text() string {
	var b strings.Builder
	for i, info := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(info.Type)
	}
	return b.String()
}

var cipherDescriptions = map[classic.CipherType]cipherInfo{
	classic.CipherCaesar:      {Params: []string{"shift"}, Description: "Rotate letters by a fixed shift"},
	classic.CipherROT13:       {Description: "Caesar with shift 13, its own inverse"},
	classic.CipherVigenere:    {Params: []string{"keyword"}, Description: "Caesar shifts driven by a repeating keyword"},
	classic.CipherAtbash:      {Description: "Mirror the alphabet, its own inverse"},
	classic.CipherXor:         {Params: []string{"key", "encoding"}, Description: "XOR every byte with a repeating key"},
	classic.CipherAffine:      {Params: []string{"a", "b"}, Description: "Map letter x to (a*x + b) mod 26"},
	classic.CipherPolybius:    {Params: []string{"keyword", "alphabet", "separator"}, Description: "Replace letters by 5x5 grid coordinates"},
	classic.CipherMagicSquare: {Params: []string{"planet", "separator", "coord-separator"}, Description: "Replace letters by planetary magic square coordinates"},
}

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List supported ciphers",
		Action: action(func(c *cli.Context) error {
			return render(c, supportedCiphers())
		}),
	}
}

func supportedCiphers() cipherList {
	types := classic.Types()
	list := make(cipherList, 0, len(types))
	for _, t := range types {
		info := cipherDescriptions[t]
		info.Type = string(t)
		list = append(list, info)
	}
	return list
}
