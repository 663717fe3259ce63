package main

import (
	"fmt"

	"github.com/toonkit/go-toon/encode"

	"github.com/scott-cotton/cli"
)

func viewCmd(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	for _, file := range orStdin(args) {
		node, err := loadToon(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
