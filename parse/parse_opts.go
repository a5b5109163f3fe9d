package parse

import (
	"github.com/signadot/xcproj/format"
	"github.com/signadot/xcproj/token"
)

type parseOpts struct {
	format   format.Format
	comments bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenFormat(o.format)}
}

type ParseOption func(*parseOpts)

func ParsePBX() ParseOption {
	return ParseFormat(format.PBXFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseComments controls whether comments are kept.  They are kept by
// default.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
