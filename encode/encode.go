package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xcproj/format"
	"github.com/signadot/xcproj/ir"
	"github.com/signadot/xcproj/token"
)

type EncState struct {
	depth    int
	comments bool
	flow     bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		es.comments = false
	}
	bw := bufio.NewWriter(w)
	if es.comments {
		if err := writeLines(bw, es, node.Leading); err != nil {
			return err
		}
	}
	if err := encode(node, bw, es); err != nil {
		return err
	}
	if err := writeString(bw, "\n"); err != nil {
		return err
	}
	if es.comments {
		if err := writeLines(bw, es, node.Trailing); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.StringType:
		return writeCommented(w, es, node.Str, ir.StringType, ValueColor)
	case ir.ArrayType:
		if es.format.IsJSON() {
			return encodeJSONArray(node, w, es)
		}
		return encodeArray(node, w, es)
	case ir.ObjectType:
		if es.format.IsJSON() {
			return encodeJSONObject(node, w, es)
		}
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode node of type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	flow := es.flow || node.Flow
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if !flow {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	saveFlow := es.flow
	es.flow = flow
	es.depth++
	for i, field := range node.Fields {
		val := node.Values[i]
		if !flow && es.comments {
			if err := writeLines(w, es, val.Leading); err != nil {
				return err
			}
		}
		if !flow {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := writeCommented(w, es, field, ir.ObjectType, FieldColor); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, " = "); err != nil {
			return err
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ";"); err != nil {
			return err
		}
		if flow {
			if err := writeString(w, " "); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if es.comments {
			if err := writeLines(w, es, val.Trailing); err != nil {
				return err
			}
		}
	}
	es.depth--
	es.flow = saveFlow
	if !flow {
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	flow := es.flow || node.Flow
	if err := writeSep(w, es, ir.ArrayType, "("); err != nil {
		return err
	}
	if !flow {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	saveFlow := es.flow
	es.flow = flow
	es.depth++
	for _, val := range node.Values {
		if !flow {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
			return err
		}
		sep := "\n"
		if flow {
			sep = " "
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
	}
	es.depth--
	es.flow = saveFlow
	if !flow {
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, ")")
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i != 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeCommented(w, es, field, ir.ObjectType, FieldColor); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ": "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, val := range node.Values {
		if i != 0 {
			if err := writeSep(w, es, ir.ArrayType, ", "); err != nil {
				return err
			}
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeIndent(w io.Writer, es *EncState) error {
	return writeString(w, strings.Repeat("\t", es.depth))
}

func writeLines(w io.Writer, es *EncState, lines []string) error {
	for _, ln := range lines {
		if err := writeString(w, applyColor(es, ir.StringType, CommentColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func writeCommented(w io.Writer, es *EncState, cs ir.CommentedString, t ir.Type, attr ColorAttr) error {
	if err := writeString(w, applyColor(es, t, attr, quoteString(cs.String, es))); err != nil {
		return err
	}
	if !es.comments || !cs.HasComment() {
		return nil
	}
	return writeString(w, " "+applyColor(es, t, CommentColor, "/* "+commentText(cs.Comment)+" */"))
}

// commentText escapes the comment terminator so a name cannot end the
// comment early.
func commentText(c string) string {
	return strings.ReplaceAll(c, "*/", `*\/`)
}

// String quoting helper

func quoteString(v string, es *EncState) string {
	switch es.format {
	case format.JSONFormat:
		return token.QuoteJSON(v)
	default:
		return token.QuoteIfNeeded(v)
	}
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
