// Package command provides CLI command definitions for cipherkit.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/internal/telemetry/logger"
	"github.com/yndnr/cipherkit/internal/telemetry/metric"
	"github.com/yndnr/cipherkit/pkg/classic"
)

// ChainCommand returns the chain subcommand group.
func ChainCommand() *cli.Command {
	flags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "step",
				Aliases:  []string{"s"},
				Usage:    "Cipher step TYPE[:PARAM], repeatable, applied in order",
				Required: true,
			},
			encodingFlag(),
		}
	}

	return &cli.Command{
		Name:  "chain",
		Usage: "Apply several ciphers in sequence",
		Description: "Step parameters: caesar:SHIFT, vigenere:KEYWORD, xor:KEY, affine:A:B,\n" +
			"polybius[:KEYWORD], magic-square[:PLANET], rot13, atbash.\n" +
			"Decryption undoes the steps in reverse order.",
		Subcommands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "Encrypt through the chain",
				ArgsUsage: "[MESSAGE...]",
				Flags:     flags(),
				Action: action(func(c *cli.Context) error {
					return runChain(c, metric.OpEncrypt)
				}),
			},
			{
				Name:      "decrypt",
				Usage:     "Decrypt through the chain",
				ArgsUsage: "[CIPHERTEXT...]",
				Flags:     flags(),
				Action: action(func(c *cli.Context) error {
					return runChain(c, metric.OpDecrypt)
				}),
			},
		},
	}
}

func runChain(c *cli.Context, op string) error {
	rt := runtimeOf(c)

	ch, err := buildChain(c.StringSlice("step"), rt.metrics)
	if err != nil {
		return err
	}
	logger.L(c.Context).Info("chain ready", "steps", ch.Types())

	return run(c, op, metric.Instrument(ch, rt.metrics), isByteLevel(ch.Types()...))
}

// buildChain builds one instrumented cipher per step.
func buildChain(steps []string, reg *metric.Registry) (*classic.Chain, error) {
	ciphers := make([]classic.Cipher, 0, len(steps))
	for i, step := range steps {
		cc, err := parseStep(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		ci, err := classic.NewWithType(cc)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		ciphers = append(ciphers, metric.Instrument(ci, reg))
	}
	return classic.NewChain(ciphers...)
}

// parseStep converts TYPE[:PARAM] into a cipher configuration.
func parseStep(step string) (classic.Config, error) {
	name, param, hasParam := strings.Cut(strings.TrimSpace(step), ":")
	t, err := classic.ParseType(strings.ToLower(name))
	if err != nil {
		return classic.Config{}, err
	}
	cc := classic.Config{Type: t}

	switch t {
	case classic.CipherCaesar:
		if cc.Shift, err = strconv.Atoi(param); err != nil {
			return cc, fmt.Errorf("caesar needs an integer shift, got %q", param)
		}
	case classic.CipherVigenere:
		cc.Keyword = param
	case classic.CipherXor:
		cc.Key = param
	case classic.CipherAffine:
		as, bs, ok := strings.Cut(param, ":")
		a, errA := strconv.Atoi(as)
		b, errB := strconv.Atoi(bs)
		if !ok || errA != nil || errB != nil {
			return cc, fmt.Errorf("affine needs A:B, got %q", param)
		}
		cc.A, cc.B = a, b
	case classic.CipherPolybius:
		cc.Keyword = param
	case classic.CipherMagicSquare:
		cc.Planet = param
	default:
		if hasParam {
			return cc, fmt.Errorf("%s takes no parameter", t)
		}
	}
	return cc, nil
}
