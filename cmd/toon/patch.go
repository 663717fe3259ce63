package main

import (
	"fmt"

	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	ops, err := loadPatch(cfg, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := loadToon(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		patched, err := applyPatch(node, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(patched, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// loadPatch reads an rfc 6902 operation list, in toon or json form.
func loadPatch(cfg *PatchConfig, file string) (jsonpatch.Patch, error) {
	node, err := loadToon(cfg.MainConfig, file)
	if err != nil {
		return nil, err
	}
	d, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	return jsonpatch.DecodePatch(d)
}

// applyPatch routes the document through its json form, applies the
// operations, and converts the result back.
func applyPatch(node *ir.Node, ops jsonpatch.Patch) (*ir.Node, error) {
	d, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}
