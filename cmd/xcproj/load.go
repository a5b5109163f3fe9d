package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/xcproj"
)

// loadDoc reads the project file at path. Unless strict, records which
// fail to decode are logged and skipped.
func loadDoc(cfg *MainConfig, cc *cli.Context, path string, strict bool) (*xcproj.Document, []byte, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := xcproj.Unmarshal(d, cfg.docOpts(path)...)
	var des xcproj.DecodeErrors
	switch {
	case err == nil:
	case !strict && doc != nil && errors.As(err, &des):
		for _, de := range des {
			cfg.logger().Warn("skipped record", "file", path, "error", de)
		}
	default:
		return nil, nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, d, nil
}
