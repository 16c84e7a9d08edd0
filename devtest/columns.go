package devtest

import (
	"strconv"
	"testing"
)

// SetColumns fixes the COLUMNS environment variable for the duration
// of the current test, so code under test sees a stable terminal width
// instead of whatever the runner happens to have. The previous value
// is restored automatically after the test.
//
// Without a per-call [Columns] option, the width comes from the
// -columns flag, the DEVTEST_COLUMNS variable, or the set_columns +
// columns file keys; when none of those produce a value the call does
// nothing.
func SetColumns(t testing.TB, opts ...ColumnsOption) {
	t.Helper()

	var o columnsOptions
	for _, opt := range opts {
		opt(&o)
	}

	width := o.width
	if width == nil {
		width = settings(t).ColumnsValue()
	}
	if width == nil {
		return
	}
	if *width <= 0 {
		t.Fatalf("devtest: columns must be positive, got %d", *width)
	}

	t.Setenv("COLUMNS", strconv.Itoa(*width))
}
