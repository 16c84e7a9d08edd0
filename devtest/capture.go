package devtest

import (
	"testing"

	"github.com/natelandau/devtest/internal/capture"
	"github.com/natelandau/devtest/pkg/ansi"
)

// Result is one snapshot of captured stdout and stderr.
type Result = capture.Result

// Captured wraps the raw capture fixture. ReadOuterr strips ANSI
// escape sequences when stripping is in effect; everything else is the
// embedded fixture's behavior.
type Captured struct {
	*capture.Fixture
	strip bool
}

// Capture redirects os.Stdout and os.Stderr for the current test and
// returns a fixture to read them back. The previous streams are
// restored at test end.
func Capture(t testing.TB, opts ...CaptureOption) *Captured {
	t.Helper()

	var o captureOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Captured{
		Fixture: capture.New(t),
		strip:   !o.keepANSI && settings(t).StripANSI(),
	}
}

// ReadOuterr returns the output written since the previous call, with
// ANSI sequences removed unless stripping is disabled.
func (c *Captured) ReadOuterr() Result {
	res := c.Fixture.ReadOuterr()
	if !c.strip {
		return res
	}
	return Result{
		Out: ansi.Strip(res.Out),
		Err: ansi.Strip(res.Err),
	}
}
