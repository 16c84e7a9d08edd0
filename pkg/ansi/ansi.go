// Package ansi removes terminal escape sequences from captured text.
package ansi

import "regexp"

// sgrPattern matches SGR (Select Graphic Rendition) sequences, the
// color and style codes emitted by terminal-aware programs.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes every SGR escape sequence from s. Stripping is
// idempotent: the result contains no sequences for a second pass to
// remove. Non-SGR control sequences (cursor movement, erase) are left
// untouched.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
