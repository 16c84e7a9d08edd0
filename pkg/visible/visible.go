// Package visible makes invisible whitespace characters visible.
//
// Whitespace-only differences between two strings are invisible in a
// normal failure diff. Replacing tabs, carriage returns, trailing
// spaces, and newlines with marker glyphs makes them obvious.
package visible

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker glyphs substituted for invisible characters.
const (
	TabGlyph      = "→" // →
	CRGlyph       = "←" // ←
	TrailingGlyph = "·" // ·
	NewlineGlyph  = "↵" // ↵
)

var trailingSpaces = regexp.MustCompile(`(?m) +$`)

// Whitespace replaces invisible whitespace in s with visible glyphs:
// tabs become arrows, carriage returns left arrows, each trailing space
// on a line a middle dot, and newlines a return symbol followed by the
// newline itself (so line structure is preserved).
func Whitespace(s string) string {
	s = strings.ReplaceAll(s, "\t", TabGlyph)
	s = strings.ReplaceAll(s, "\r", CRGlyph)
	s = trailingSpaces.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat(TrailingGlyph, len(m))
	})
	return strings.ReplaceAll(s, "\n", NewlineGlyph+"\n")
}

// Explain returns failure-explanation lines for a string comparison with
// whitespace made visible, or nil when it has no opinion: the operator
// is not equality, or neither operand contains invisible whitespace.
func Explain(op, left, right string) []string {
	if op != "==" {
		return nil
	}

	visibleLeft := Whitespace(left)
	visibleRight := Whitespace(right)

	// Only step in when the replacement actually changed something.
	if visibleLeft == left && visibleRight == right {
		return nil
	}

	return []string{
		fmt.Sprintf("'%s' == '%s'", visibleLeft, visibleRight),
		"",
		"Whitespace-visible comparison:",
		fmt.Sprintf("  Left:  '%s'", visibleLeft),
		fmt.Sprintf("  Right: '%s'", visibleRight),
	}
}
