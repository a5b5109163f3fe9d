package main

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lines of unchanged text shown around each change
const diffContext = 2

// writeDiff writes a line diff from the text of a file to its
// canonical form. Runs of unchanged lines are elided to "@@".
func writeDiff(w io.Writer, name string, from, to []byte) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(string(from), string(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var buf strings.Builder
	buf.WriteString("--- " + name + "\n")
	buf.WriteString("+++ " + name + " (formatted)\n")
	for i, d := range diffs {
		lns := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(&buf, "-", lns)
		case diffpatch.DiffInsert:
			writeLines(&buf, "+", lns)
		case diffpatch.DiffEqual:
			first, last := i == 0, i == len(diffs)-1
			elided := false
			for j, ln := range lns {
				keep := (!first && j < diffContext) || (!last && j >= len(lns)-diffContext)
				if keep {
					writeLines(&buf, " ", []string{ln})
					elided = false
					continue
				}
				if !elided {
					buf.WriteString("@@\n")
					elided = true
				}
			}
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

func writeLines(buf *strings.Builder, prefix string, lns []string) {
	for _, ln := range lns {
		buf.WriteString(prefix)
		buf.WriteString(ln)
		if !strings.HasSuffix(ln, "\n") {
			buf.WriteString("\n\\ no newline at end of file\n")
		}
	}
}
