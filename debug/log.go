package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/ir"
)

type PBX struct{ *ir.Node }

func (y PBX) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf writes to stderr, rendering *ir.Node arguments as text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = PBX{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
