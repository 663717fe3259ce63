package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='colorize encoded output'"`
	Permissive bool `cli:"name=p aliases=permissive desc='recover from malformed input instead of failing'"`
	Unsorted   bool `cli:"name=unsorted desc='keep insertion key order instead of sorting'"`

	J bool `cli:"name=j aliases=json desc='read json input'"`
	Y bool `cli:"name=y aliases=yaml desc='read yaml input'"`

	Delim byte

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) delimOpt(cc *cli.Context, a string) (any, error) {
	switch a {
	case ",", "comma":
		cfg.Delim = ','
	case "|", "pipe":
		cfg.Delim = '|'
	case "\t", "tab":
		cfg.Delim = '\t'
	default:
		return nil, fmt.Errorf("%w: delimiter %q not one of comma, pipe, tab", cli.ErrUsage, a)
	}
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Permissive {
		res = append(res, parse.Permissive())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.SortKeys(!cfg.Unsorted),
	}
	if cfg.Delim != 0 {
		res = append(res, encode.Delim(cfg.Delim))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EncodeConfig struct {
	*MainConfig
	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Decode *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress output, only set the exit code'"`
	Diff  *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type VerifyConfig struct {
	*MainConfig
	Verify *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}
