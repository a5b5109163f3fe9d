package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/format"
	"github.com/signadot/xcproj/xcproj"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	J       bool   `cli:"name=j aliases=json desc='do i/o in json'"`
	Project string `cli:"name=p aliases=project desc='project name used in comments'"`
	Verbose bool   `cli:"name=v desc='log warnings about the objects read'"`
	Config  string `cli:"name=config desc='toml file of defaults (default $XCPROJ_CONFIG)'"`

	Out      string
	CloseOut func() error

	colorFromFile bool

	Main *cli.Command
}

// FileConfig holds the defaults read from the -config file. Flags
// given on the command line take precedence.
type FileConfig struct {
	Color   *bool  `toml:"color"`
	JSON    bool   `toml:"json"`
	Project string `toml:"project"`
	Verbose bool   `toml:"verbose"`
}

func (cfg *MainConfig) loadConfig() error {
	path := cfg.Config
	if path == "" {
		path = os.Getenv("XCPROJ_CONFIG")
	}
	if path == "" {
		return nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}
	fc := &FileConfig{}
	if _, err := toml.Decode(string(d), fc); err != nil {
		return fmt.Errorf("error decoding config %s: %w", path, err)
	}
	cfg.apply(fc)
	return nil
}

func (cfg *MainConfig) apply(fc *FileConfig) {
	if fc.Color != nil && !cfg.optSet("color") {
		cfg.Color = *fc.Color
		cfg.colorFromFile = true
	}
	if fc.JSON && !cfg.optSet("j") {
		cfg.J = true
	}
	if fc.Project != "" && cfg.Project == "" {
		cfg.Project = fc.Project
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) ioFormat() format.Format {
	if cfg.J {
		return format.JSONFormat
	}
	return format.PBXFormat
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
	return theLog
}

// docOpts returns the options for reading and writing the project
// file at path.
func (cfg *MainConfig) docOpts(path string) []xcproj.Option {
	res := []xcproj.Option{
		xcproj.WithFormat(cfg.ioFormat()),
		xcproj.WithLogger(cfg.logger().With("file", path)),
	}
	name := cfg.Project
	if name == "" {
		name = projectName(path)
	}
	if name != "" {
		res = append(res, xcproj.WithProjectName(name))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.optSet("color") || cfg.colorFromFile {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result to the file instead of the output'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='only list objects matching the expression'"`

	List *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report which files differ'"`

	Check *cli.Command
}
