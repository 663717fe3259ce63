package main

import (
	"fmt"
	"io"
	"os"

	toon "github.com/toonkit/go-toon"
	"github.com/toonkit/go-toon/textdiff"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two documents", cli.ErrUsage)
	}
	a, err := loadToon(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	b, err := loadToon(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	at, err := toon.EncodeString(a)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", args[0], err)
	}
	bt, err := toon.EncodeString(b)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", args[1], err)
	}
	d := textdiff.Lines(at, bt, diffPrinter(cfg, cc.Out))
	if d == "" {
		return nil
	}
	if !cfg.Quiet {
		io.WriteString(cc.Out, d)
	}
	return fmt.Errorf("%s and %s differ", args[0], args[1])
}

func diffPrinter(cfg *DiffConfig, w io.Writer) textdiff.Printer {
	if cfg.Color {
		return textdiff.ColorPrinter
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return textdiff.ColorPrinter
	}
	return textdiff.PlainPrinter
}
