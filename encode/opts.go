package encode

import "github.com/signadot/xcproj/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeComments controls whether comments are written.  They are written
// by default for PBX and never for JSON.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
