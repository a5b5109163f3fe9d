package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/xcproj"
)

func reformat(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, path := range inputs(args) {
		if err := reformatFile(cfg, cc, path); err != nil {
			return err
		}
	}
	return nil
}

func reformatFile(cfg *FmtConfig, cc *cli.Context, path string) error {
	// strict: rewriting a file must not drop the records which failed
	doc, in, err := loadDoc(cfg.MainConfig, cc, path, true)
	if err != nil {
		return err
	}
	out, err := xcproj.Marshal(doc, cfg.docOpts(path)...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if !cfg.Write || path == "-" {
		_, err := cc.Out.Write(out)
		return err
	}
	if bytes.Equal(in, out) {
		return nil
	}
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, st.Mode().Perm())
}
