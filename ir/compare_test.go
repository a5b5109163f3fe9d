package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	kv := func(k, v string) KeyVal {
		return KeyVal{Key: Commented(k, ""), Val: FromString(v)}
	}
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"comment ignored", FromString("a").WithComment("x"), FromString("a"), 0},
		{"flow ignored", FromStrings([]string{"a"}).WithFlow(true), FromStrings([]string{"a"}), 0},
		{"Short Array < Long Array", FromStrings([]string{"a"}), FromStrings([]string{"a", "b"}), -1},
		{"Array order matters", FromStrings([]string{"b", "a"}), FromStrings([]string{"a", "b"}), 1},
		{"Object equal", FromKeyVals([]KeyVal{kv("a", "1")}), FromKeyVals([]KeyVal{kv("a", "1")}), 0},
		{"Object key order matters",
			FromKeyVals([]KeyVal{kv("a", "1"), kv("b", "2")}),
			FromKeyVals([]KeyVal{kv("b", "2"), kv("a", "1")}), -1},
		{"Object value", FromKeyVals([]KeyVal{kv("a", "2")}), FromKeyVals([]KeyVal{kv("a", "1")}), 1},
		{"nil < node", nil, FromString(""), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHashIgnoresComments(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: Commented("AAAA", "Tool"), Val: FromString("x").WithComment("c")},
	})
	b := FromKeyVals([]KeyVal{
		{Key: Commented("AAAA", ""), Val: FromString("x")},
	})
	if a.Hash() != b.Hash() {
		t.Errorf("hash depends on comments")
	}
	c := FromKeyVals([]KeyVal{
		{Key: Commented("AAAA", ""), Val: FromString("y")},
	})
	if a.Hash() == c.Hash() {
		t.Errorf("hash collision on distinct values")
	}
}
