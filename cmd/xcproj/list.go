package main

import (
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/xcproj"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	filter, err := compileFilter(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, path := range inputs(args) {
		doc, _, err := loadDoc(cfg.MainConfig, cc, path, false)
		if err != nil {
			return err
		}
		e := xcproj.NewEncoder(doc.Objects, append([]xcproj.Option{xcproj.WithProjectName(doc.Name)}, cfg.docOpts(path)...)...)
		if err := listObjects(cc.Out, e, doc.Objects, filter); err != nil {
			return fmt.Errorf("error listing %s: %w", path, err)
		}
	}
	return nil
}

func listEnv(e *xcproj.Encoder, obj xcproj.Object) map[string]any {
	env := map[string]any{
		"ref":      "",
		"isa":      "",
		"name":     "",
		"modelled": false,
	}
	if obj == nil {
		return env
	}
	name, _ := e.DisplayName(obj)
	env["ref"] = obj.Reference()
	env["isa"] = obj.Isa()
	env["name"] = name
	env["modelled"] = xcproj.Modelled(obj.Isa())
	return env
}

// compileFilter compiles a list expression; the empty expression
// matches everything.
func compileFilter(src string) (*vm.Program, error) {
	if src == "" {
		return nil, nil
	}
	return expr.Compile(src, expr.Env(listEnv(nil, nil)), expr.AsBool())
}

func listObjects(w io.Writer, e *xcproj.Encoder, reg *xcproj.Registry, filter *vm.Program) error {
	for _, obj := range reg.Objects() {
		env := listEnv(e, obj)
		if filter != nil {
			res, err := expr.Run(filter, env)
			if err != nil {
				return fmt.Errorf("error evaluating filter on %s: %w", obj.Reference(), err)
			}
			if ok, _ := res.(bool); !ok {
				continue
			}
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", env["ref"], env["isa"], env["name"]); err != nil {
			return err
		}
	}
	return nil
}
