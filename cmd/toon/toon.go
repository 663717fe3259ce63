package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/parse"

	"github.com/scott-cotton/cli"
)

func toonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readInput(file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

// loadValue reads a document in the json value universe: json by default,
// yaml with -y.
func loadValue(cfg *MainConfig, file string) (*ir.Node, error) {
	d, err := readInput(file)
	if err != nil {
		return nil, err
	}
	if cfg.Y {
		return ir.FromYAML(d)
	}
	return ir.FromJSON(d)
}

// loadToon reads a toon document, or json/yaml when -j/-y selects one.
func loadToon(cfg *MainConfig, file string) (*ir.Node, error) {
	d, err := readInput(file)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.J:
		return ir.FromJSON(d)
	case cfg.Y:
		return ir.FromYAML(d)
	default:
		return parse.Parse(d, cfg.parseOpts()...)
	}
}

// orStdin makes the zero-argument case read standard input.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
