package alpm

import (
	"testing"
)

func TestVerCmp(t *testing.T) {
	var tests = []struct {
		left, right string
		want        int
	}{
		{"1.5.0", "1.5.0", 0},
		{"1.5.1", "1.5.0", 1},
		{"1.5.1", "1.5", 1},
		{"1.5.0-1", "1.5.0-2", -1},
		{"1.5.0-2", "1.5.1-1", -1},
		{"1.5-1", "1.5", 0},
		{"1.0-1", "1.1", -1},
		{"1.1-1", "1.0", 1},
		{"5.2.15-1", "5.10.0-1", -1},
		{"1.2.013", "1.2.13", 0},
		{"1.5b", "1.5", -1},
		{"1.5b-1", "1.5", -1},
		{"1.5b", "1.5.1", -1},
		{"1.0a", "1.0alpha", -1},
		{"1.0alpha", "1.0b", -1},
		{"1.0b", "1.0beta", -1},
		{"1.0beta", "1.0rc", -1},
		{"1.0rc", "1.0", -1},
		{"1.0rc1-1", "1.0-1", -1},
		{"1.5.a", "1.5", 1},
		{"1.5.b", "1.5.a", 1},
		{"1.5.1", "1.5.b", 1},
		{"0:1.0", "1.0", 0},
		{"0:1.1", "1.0", 1},
		{"1:1.0", "0:1.1", 1},
		{"1:1.0", "2:1.1", -1},
		{"1:1.0-1", "2.0-1", 1},
		{"1:1.0-1", "0:1.1-1", 1},
	}
	for _, test := range tests {
		if got := VerCmp(test.left, test.right); got != test.want {
			t.Errorf("VerCmp(%q, %q) = %d, want %d",
				test.left, test.right, got, test.want)
		}
		if got := VerCmp(test.right, test.left); got != -test.want {
			t.Errorf("VerCmp(%q, %q) = %d, want %d",
				test.right, test.left, got, -test.want)
		}
	}
}
