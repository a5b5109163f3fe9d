package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/ir"
	"github.com/signadot/xcproj/xcproj"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object reference", cli.ErrUsage)
	}
	ref := args[0]
	for _, path := range inputs(args[1:]) {
		doc, _, err := loadDoc(cfg.MainConfig, cc, path, false)
		if err != nil {
			return err
		}
		obj, ok := doc.Objects.Get(ref)
		if !ok {
			return fmt.Errorf("%s: no object %s", path, ref)
		}
		opts := append([]xcproj.Option{xcproj.WithProjectName(doc.Name)}, cfg.docOpts(path)...)
		key, rec := xcproj.NewEncoder(doc.Objects, opts...).EncodeObject(obj)
		encOpts := cfg.encOpts(cc.Out)
		if _, err := fmt.Fprintf(cc.Out, "%s = ", encode.MustString(ir.FromCommented(key), encOpts...)); err != nil {
			return err
		}
		if err := encode.Encode(rec, cc.Out, encOpts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", ref, err)
		}
	}
	return nil
}
