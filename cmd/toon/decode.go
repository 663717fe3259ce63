package main

import (
	"fmt"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/parse"

	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		jd, err := ir.ToJSON(node)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		if _, err := cc.Out.Write(append(jd, '\n')); err != nil {
			return err
		}
	}
	return nil
}
