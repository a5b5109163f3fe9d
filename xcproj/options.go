package xcproj

import (
	"log/slog"

	"github.com/signadot/xcproj/format"
)

type Option func(*options)

type options struct {
	logger      *slog.Logger
	projectName string
	format      format.Format
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithLogger sets the logger receiving warnings about duplicate and
// dangling references. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithProjectName sets the project name used in the comment of the
// project's configuration list.
func WithProjectName(name string) Option {
	return func(o *options) { o.projectName = name }
}

// WithFormat selects the text format for Marshal and Unmarshal.
func WithFormat(f format.Format) Option {
	return func(o *options) { o.format = f }
}
