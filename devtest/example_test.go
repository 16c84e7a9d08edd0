package devtest_test

import (
	"fmt"
	"testing"

	"github.com/natelandau/devtest/devtest"
)

// Capturing CLI output without fighting color codes.
func ExampleCapture() {
	_ = func(t *testing.T) {
		captured := devtest.Capture(t)
		fmt.Print("\x1b[31mred\x1b[0m")
		res := captured.ReadOuterr()
		_ = res.Out // "red"
	}
}

// Recording intermediate state that only shows up when the test fails.
func ExampleDebug() {
	_ = func(t *testing.T) {
		dbg := devtest.Debug(t)
		dbg.Record(map[string]int{"retries": 3}, devtest.Title("state"))
		// Flushed to stderr at teardown if the test fails,
		// or always with -print-debug.
	}
}

// Fixing the reported terminal width for a single test.
func ExampleSetColumns() {
	_ = func(t *testing.T) {
		devtest.SetColumns(t, devtest.Columns(120))
		// COLUMNS=120 for the rest of the test, restored afterward.
	}
}
