package main

import (
	"fmt"

	"github.com/toonkit/go-toon/benchmark"
	"github.com/toonkit/go-toon/encode"

	"github.com/scott-cotton/cli"
)

func statsCmd(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	// never colorized: escape codes would skew the counts
	opts := []encode.EncodeOption{encode.SortKeys(!cfg.Unsorted)}
	if cfg.Delim != 0 {
		opts = append(opts, encode.Delim(cfg.Delim))
	}
	for _, file := range orStdin(args) {
		node, err := loadToon(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		cmp, err := benchmark.Compare(node, opts...)
		if err != nil {
			return fmt.Errorf("error comparing %s: %w", file, err)
		}
		fmt.Fprintf(cc.Out, "%s:\n%s", file, cmp)
	}
	return nil
}
