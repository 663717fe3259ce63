package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "d",
			Aliases:     []string{"delim"},
			Description: "tabular delimiter: comma, pipe, tab",
			Type:        cli.NamedFuncOpt(cfg.delimOpt, "(delimiter)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] command [opts]").
		WithDescription("toon is a tool for working with token-oriented object notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			VerifyCommand(cfg),
			StatsCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "en").
		WithSynopsis("encode [files]").
		WithDescription("encode json or yaml documents as toon").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decode").
		WithAliases("de").
		WithSynopsis("decode [files]").
		WithDescription("decode toon documents to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeCmd(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view toon documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewCmd(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff the canonical encodings of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("pa").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply an rfc 6902 json patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("verify").
		WithAliases("ve").
		WithSynopsis("verify [files]").
		WithDescription("check that documents round-trip and re-encode canonically").
		WithRun(func(cc *cli.Context, args []string) error {
			return verifyCmd(cfg, cc, args)
		})
	cfg.Verify = cmd
	return cmd
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithAliases("s", "st").
		WithSynopsis("stats [files]").
		WithDescription("report estimated token savings of toon over json").
		WithRun(func(cc *cli.Context, args []string) error {
			return statsCmd(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}
