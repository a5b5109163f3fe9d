package token

import "github.com/signadot/xcproj/format"

type tokenOpts struct {
	format format.Format
}
type TokenOpt func(*tokenOpts)

func TokenPBX() TokenOpt {
	return func(o *tokenOpts) { o.format = format.PBXFormat }
}
func TokenJSON() TokenOpt {
	return func(o *tokenOpts) { o.format = format.JSONFormat }
}
func TokenFormat(f format.Format) TokenOpt {
	return func(o *tokenOpts) { o.format = f }
}
