package devtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natelandau/devtest/pkg/visible"
)

// EqualStrings asserts that two strings are equal. When they differ
// only by invisible whitespace (tabs, carriage returns, trailing
// spaces, newlines), the failure output shows the strings with that
// whitespace replaced by visible glyphs; otherwise it falls back to
// the standard diff.
func EqualStrings(t testing.TB, left, right string) bool {
	t.Helper()

	if left == right {
		return true
	}

	if settings(t).ShowWhitespace() {
		if lines := visible.Explain("==", left, right); lines != nil {
			t.Errorf("strings differ:\n%s", strings.Join(lines, "\n"))
			return false
		}
	}

	return assert.Equal(t, left, right)
}
