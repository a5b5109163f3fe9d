package main

import (
	"bytes"
	"testing"

	"github.com/signadot/xcproj/xcproj"
)

func TestListObjects(t *testing.T) {
	reg := xcproj.NewRegistry(
		xcproj.NewLegacyTarget("T1", "Tool"),
		xcproj.NewFileReference("F1", "main.c", xcproj.SourceTreeGroup),
		xcproj.NewGroup("G1", "F1"),
	)
	e := xcproj.NewEncoder(reg)
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "all",
			want: "F1\tPBXFileReference\tmain.c\nG1\tPBXGroup\t\nT1\tPBXLegacyTarget\tTool\n",
		},
		{
			name: "isa",
			expr: `isa == "PBXLegacyTarget"`,
			want: "T1\tPBXLegacyTarget\tTool\n",
		},
		{
			name: "named",
			expr: `name != "" && ref startsWith "F"`,
			want: "F1\tPBXFileReference\tmain.c\n",
		},
		{
			name: "none",
			expr: `!modelled`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := compileFilter(tc.expr)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := listObjects(&buf, e, reg, filter); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompileFilterErrors(t *testing.T) {
	for _, src := range []string{`ref +`, `isa`, `unknown == 1`} {
		if _, err := compileFilter(src); err == nil {
			t.Errorf("compileFilter(%q) succeeded", src)
		}
	}
}
