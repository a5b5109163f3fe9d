package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
)

const pbxprojName = "project.pbxproj"

// projectPath resolves an argument naming a .xcodeproj bundle to the
// project file inside it.
func projectPath(arg string) string {
	if arg == "-" {
		return arg
	}
	st, err := os.Stat(arg)
	if err == nil && st.IsDir() {
		return filepath.Join(arg, pbxprojName)
	}
	return arg
}

// projectName returns the project name implied by the path of a
// project file, "App" for App.xcodeproj/project.pbxproj.
func projectName(path string) string {
	if path == "-" || path == "" {
		return ""
	}
	dir := filepath.Base(filepath.Dir(filepath.Clean(path)))
	name, ok := strings.CutSuffix(dir, ".xcodeproj")
	if !ok {
		return ""
	}
	return name
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = cc.In
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return d, nil
}

// inputs returns the project files named by args, standard input when
// there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	res := make([]string, len(args))
	for i, arg := range args {
		res[i] = projectPath(arg)
	}
	return res
}
