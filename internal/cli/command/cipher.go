// Package command provides CLI command definitions for cipherkit.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/internal/infra/shutdown"
	"github.com/yndnr/cipherkit/internal/telemetry/logger"
	"github.com/yndnr/cipherkit/internal/telemetry/metric"
	"github.com/yndnr/cipherkit/pkg/classic"
)

// Result is the outcome of one encrypt or decrypt command.
type Result struct {
	Cipher    string `json:"cipher" yaml:"cipher"`
	Operation string `json:"operation" yaml:"operation"`
	Encoding  string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Output    string `json:"output" yaml:"output"`
}

// Text implements output.Texter.
func (r *Result) Text() string {
	return r.Output
}

// EncryptCommand returns the encrypt command.
func EncryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"enc"},
		Usage:     "Encrypt a message",
		ArgsUsage: "[MESSAGE...]",
		Description: "Encrypts the arguments joined by spaces, or stdin when no arguments are given.\n" +
			"Flags override the cipher from the config file.",
		Flags: cipherFlags(),
		Action: action(func(c *cli.Context) error {
			return runSingle(c, metric.OpEncrypt)
		}),
	}
}

// DecryptCommand returns the decrypt command.
func DecryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Aliases:   []string{"dec"},
		Usage:     "Decrypt a message",
		ArgsUsage: "[CIPHERTEXT...]",
		Flags:     cipherFlags(),
		Action: action(func(c *cli.Context) error {
			return runSingle(c, metric.OpDecrypt)
		}),
	}
}

func cipherFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "cipher",
			Aliases: []string{"t"},
			Usage:   "Cipher type (see 'cipherkit list')",
		},
		&cli.IntFlag{Name: "shift", Usage: "Caesar shift"},
		&cli.StringFlag{Name: "keyword", Usage: "Vigenère keyword or Polybius grid key"},
		&cli.StringFlag{Name: "key", Usage: "XOR key"},
		&cli.IntFlag{Name: "a", Usage: "Affine multiplier (coprime with 26)"},
		&cli.IntFlag{Name: "b", Usage: "Affine offset"},
		&cli.StringFlag{Name: "alphabet", Usage: "Polybius alphabet (25 letters)"},
		&cli.StringFlag{Name: "separator", Usage: "Separator between coordinate pairs"},
		&cli.StringFlag{Name: "coord-separator", Usage: "Separator between row and column (magic square)"},
		&cli.StringFlag{Name: "planet", Usage: "Magic square planet (saturn ... moon)"},
		encodingFlag(),
	}
}

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "encoding",
		Usage: "Ciphertext encoding for XOR: hex, base64, raw",
	}
}

// cipherConfig applies explicitly set flags on top of base. Selecting a
// different type drops the parameters of the configured one.
func cipherConfig(c *cli.Context, base classic.Config) classic.Config {
	cc := base
	if c.IsSet("cipher") {
		t := classic.CipherType(strings.ToLower(c.String("cipher")))
		if t != classic.CipherType(strings.ToLower(string(base.Type))) {
			cc = classic.Config{Type: t}
		}
	}

	if c.IsSet("shift") {
		cc.Shift = c.Int("shift")
	}
	if c.IsSet("keyword") {
		cc.Keyword = c.String("keyword")
	}
	if c.IsSet("key") {
		cc.Key = c.String("key")
	}
	if c.IsSet("a") {
		cc.A = c.Int("a")
	}
	if c.IsSet("b") {
		cc.B = c.Int("b")
	}
	if c.IsSet("alphabet") {
		cc.Alphabet = c.String("alphabet")
	}
	if c.IsSet("separator") {
		cc.Separator = c.String("separator")
	}
	if c.IsSet("coord-separator") {
		cc.CoordSeparator = c.String("coord-separator")
	}
	if c.IsSet("planet") {
		cc.Planet = c.String("planet")
	}
	return cc
}

// keyMaterial returns the secret parameter of cc, if any.
func keyMaterial(cc classic.Config) []byte {
	switch classic.CipherType(strings.ToLower(string(cc.Type))) {
	case classic.CipherXor:
		return []byte(cc.Key)
	case classic.CipherVigenere, classic.CipherPolybius:
		return []byte(cc.Keyword)
	default:
		return nil
	}
}

func runSingle(c *cli.Context, op string) error {
	rt := runtimeOf(c)

	cc := cipherConfig(c, rt.cfg.Cipher)
	ci, err := classic.NewWithType(cc)
	if err != nil {
		return fmt.Errorf("build %s cipher: %w", cc.Type, err)
	}
	logger.L(c.Context).Info("cipher ready", "cipher", ci.Type(), logger.KeyAttr(keyMaterial(cc)))

	return run(c, op, metric.Instrument(ci, rt.metrics), isByteLevel(ci.Type()))
}

// run applies op to the message and renders the result. Byte-level
// ciphertext is carried in the configured encoding.
func run(c *cli.Context, op string, ci classic.Cipher, byteLevel bool) error {
	rt := runtimeOf(c)

	msg, err := readMessage(c)
	if err != nil {
		return err
	}

	enc := ""
	if byteLevel {
		enc = rt.cfg.Encoding
		if c.IsSet("encoding") {
			enc = c.String("encoding")
		}
	}

	res := &Result{Cipher: string(ci.Type()), Operation: op, Encoding: enc}
	switch op {
	case metric.OpEncrypt:
		ct := ci.Encrypt([]byte(msg))
		if !byteLevel {
			res.Output = string(ct)
			break
		}
		if res.Output, err = encode(ct, enc); err != nil {
			return err
		}
	case metric.OpDecrypt:
		in := []byte(msg)
		if byteLevel {
			if in, err = decode(msg, enc); err != nil {
				return fmt.Errorf("decode ciphertext: %w", err)
			}
		}
		if res.Output, err = classic.DecryptText(ci, string(in)); err != nil {
			return fmt.Errorf("decrypt: %w", err)
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	logger.L(c.Context).Info("operation complete", "cipher", ci.Type(), "op", op, "bytes", len(msg))
	return render(c, res)
}

// readMessage joins the arguments, or reads stdin when there are none.
// One trailing line break is dropped from stdin. Reading stops with
// shutdown.ErrInterrupted when the run is cancelled.
func readMessage(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(c.App.Reader)
		ch <- readResult{data, err}
	}()

	select {
	case <-c.Context.Done():
		return "", shutdown.Err(c.Context)
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("read stdin: %w", r.err)
		}
		s := strings.TrimSuffix(string(r.data), "\n")
		return strings.TrimSuffix(s, "\r"), nil
	}
}

func isByteLevel(types ...classic.CipherType) bool {
	for _, t := range types {
		if t == classic.CipherXor {
			return true
		}
	}
	return false
}
