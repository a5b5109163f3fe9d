package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Lookup bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("XCPROJ_DEBUG_DECODE")
	d.Encode = boolEnv("XCPROJ_DEBUG_ENCODE")
	d.Lookup = boolEnv("XCPROJ_DEBUG_LOOKUP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Lookup() bool {
	return d.Lookup
}
