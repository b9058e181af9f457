package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestLineEnding(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"The cat sat on the mat", "mat"},
		{"a glittering stream", "eam"},
		{"go", "go"},
		{"1234 !!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := lineEnding(tc.line); got != tc.want {
			t.Fatalf("lineEnding(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestRhymeSchemeAABB(t *testing.T) {
	text := "the cat on the mat\nin perfect format\nthe dog on a log\nan entry in the catalog"
	if got := rhymeScheme(text); got != "AABB" {
		t.Fatalf("unexpected scheme: %q", got)
	}
}

func TestRhymeSchemeDistinctEndings(t *testing.T) {
	text := "The cat sat on the mat\nThe dog sat on a log"
	if got := rhymeScheme(text); got != "AB" {
		t.Fatalf("unexpected scheme: %q", got)
	}
}

func TestRhymeSchemeRepeatReusesLetter(t *testing.T) {
	text := "mat\nlog\nformat"
	if got := rhymeScheme(text); got != "ABA" {
		t.Fatalf("unexpected scheme: %q", got)
	}
}

func TestRhymeSchemeLengthMatchesLines(t *testing.T) {
	text := "one line here\nanother line too\nand a third"
	scheme := rhymeScheme(text)
	if len(scheme) != len(Lines(text)) {
		t.Fatalf("scheme %q length != %d lines", scheme, len(Lines(text)))
	}
	if scheme[0] != 'A' {
		t.Fatalf("first distinct ending must map to A, got %q", scheme)
	}
}

func TestRhymeSchemeZeroLines(t *testing.T) {
	if got := rhymeScheme("\n\n"); got != "" {
		t.Fatalf("expected empty scheme, got %q", got)
	}
}

func TestSchemeLabelPastZ(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		if got := schemeLabel(tc.n); got != tc.want {
			t.Fatalf("schemeLabel(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestRhymeSchemeManyGroupsWidensLabels(t *testing.T) {
	// 27 lines with pairwise distinct endings force the label past Z.
	var lines []string
	for i := 0; i < 27; i++ {
		word := string([]byte{'x', byte('a' + i/26), byte('a' + i%26)})
		lines = append(lines, fmt.Sprintf("line ending in %s", word))
	}
	scheme := rhymeScheme(strings.Join(lines, "\n"))
	if !strings.HasSuffix(scheme, "AA") {
		t.Fatalf("expected 27th group label AA, got scheme %q", scheme)
	}
}
