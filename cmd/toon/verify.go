package main

import (
	"fmt"

	toon "github.com/toonkit/go-toon"
	"github.com/toonkit/go-toon/ir"

	"github.com/scott-cotton/cli"
)

// verifyCmd checks the codec laws on real documents: decode(encode(x))
// must reproduce x, and re-encoding the decoded form must reproduce the
// canonical text exactly.
func verifyCmd(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		node, err := loadToon(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		canon, err := toon.EncodeString(node)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		back, err := toon.DecodeString(canon)
		if err != nil {
			return fmt.Errorf("%s: canonical text does not decode: %w", file, err)
		}
		if ir.Compare(node, back) != 0 {
			return fmt.Errorf("%s: decoded value differs from source", file)
		}
		again, err := toon.EncodeString(back)
		if err != nil {
			return fmt.Errorf("error re-encoding %s: %w", file, err)
		}
		if again != canon {
			return fmt.Errorf("%s: canonical encoding is not idempotent", file)
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	return nil
}
