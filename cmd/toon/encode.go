package main

import (
	"fmt"

	"github.com/toonkit/go-toon/encode"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		node, err := loadValue(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
