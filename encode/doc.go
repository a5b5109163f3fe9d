// Package encode writes value trees as project file text.
//
// The default PBX rendering reproduces the layout the consuming tool writes:
// tab indentation, `key = value;` entries, `(a, b, )` arrays with trailing
// separators, single-line rendering for nodes marked Flow, inline
// `/* comment */` annotations, and Leading/Trailing comment lines at column
// zero.  JSON rendering writes the same tree without comments.
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
package encode
