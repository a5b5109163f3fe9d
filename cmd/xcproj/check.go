package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/xcproj"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, path := range inputs(args) {
		ok, err := checkFile(cfg, cc, path)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFile reports whether the file at path decodes fully and is in
// canonical form.
func checkFile(cfg *CheckConfig, cc *cli.Context, path string) (bool, error) {
	in, err := readInput(cc, path)
	if err != nil {
		return false, err
	}
	opts := cfg.docOpts(path)
	doc, err := xcproj.Unmarshal(in, opts...)
	var des xcproj.DecodeErrors
	switch {
	case err == nil:
	case doc != nil && errors.As(err, &des):
		if cfg.Quiet {
			_, err := fmt.Fprintln(cc.Out, path)
			return false, err
		}
		for _, de := range des {
			if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", path, de); err != nil {
				return false, err
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("error decoding %s: %w", path, err)
	}
	for _, ref := range doc.Objects.Dangling() {
		cfg.logger().Warn("dangling reference", "file", path, "ref", ref)
	}
	for _, obj := range unknownSourceTrees(doc.Objects) {
		tree, _ := sourceTreeOf(obj)
		cfg.logger().Warn("unknown source tree", "file", path, "ref", obj.Reference(), "sourceTree", tree)
	}
	out, err := xcproj.Marshal(doc, opts...)
	if err != nil {
		return false, fmt.Errorf("error encoding %s: %w", path, err)
	}
	if bytes.Equal(in, out) {
		return true, nil
	}
	if cfg.Quiet {
		_, err := fmt.Fprintln(cc.Out, path)
		return false, err
	}
	return false, writeDiff(cc.Out, path, in, out)
}

func sourceTreeOf(obj xcproj.Object) (xcproj.SourceTree, bool) {
	var p *xcproj.SourceTree
	switch o := obj.(type) {
	case *xcproj.FileReference:
		p = o.SourceTree
	case *xcproj.Group:
		p = o.SourceTree
	case *xcproj.VariantGroup:
		p = o.SourceTree
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// unknownSourceTrees returns the file elements whose source tree is
// not one Xcode writes itself, such as a build setting name.
func unknownSourceTrees(reg *xcproj.Registry) []xcproj.Object {
	var res []xcproj.Object
	for _, obj := range reg.Objects() {
		if tree, ok := sourceTreeOf(obj); ok && !tree.Known() {
			res = append(res, obj)
		}
	}
	return res
}
