package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/xcproj"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	for i, path := range inputs(args) {
		doc, _, err := loadDoc(cfg.MainConfig, cc, path, false)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Encode(xcproj.Encode(doc, cfg.docOpts(path)...), cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
	}
	return nil
}
