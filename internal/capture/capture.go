// Package capture redirects the process stdout and stderr to per-test
// files so their contents can be read back during the test.
//
// This is file-level capture: anything written through the os.Stdout
// and os.Stderr variables (fmt.Print, log, lipgloss renderers) lands in
// the capture files. Writers that duplicated the underlying file
// descriptors before the fixture was created are not redirected.
package capture

import (
	"os"
	"path/filepath"
	"testing"
)

// Result holds one snapshot of captured output.
type Result struct {
	Out string
	Err string
}

// realStderr is the process stderr saved by the outermost active
// fixture, nil when no capture is active.
var realStderr *os.File

// RealStderr returns the process stderr from before any active capture
// redirection, or os.Stderr when nothing is redirected. Diagnostic
// writers use it so their output is not swallowed by a capture file.
func RealStderr() *os.File {
	if realStderr != nil {
		return realStderr
	}
	return os.Stderr
}

// Fixture captures os.Stdout and os.Stderr for a single test. Reads
// are consuming: ReadOuterr returns only the text written since the
// previous call.
//
// Not safe for parallel tests; the fixture swaps process-wide state.
type Fixture struct {
	t       testing.TB
	outFile *os.File
	errFile *os.File
	outOff  int
	errOff  int
}

// New redirects os.Stdout and os.Stderr to files under the test's temp
// directory and registers a cleanup that restores the previous streams.
func New(t testing.TB) *Fixture {
	t.Helper()

	dir := t.TempDir()
	outFile, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatalf("capture: creating stdout file: %v", err)
	}
	errFile, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatalf("capture: creating stderr file: %v", err)
	}

	prevOut, prevErr := os.Stdout, os.Stderr
	saved := false
	if realStderr == nil {
		realStderr = prevErr
		saved = true
	}
	os.Stdout, os.Stderr = outFile, errFile
	t.Cleanup(func() {
		os.Stdout, os.Stderr = prevOut, prevErr
		if saved {
			realStderr = nil
		}
		outFile.Close()
		errFile.Close()
	})

	return &Fixture{t: t, outFile: outFile, errFile: errFile}
}

// ReadOuterr returns everything written to the captured streams since
// the previous call.
func (f *Fixture) ReadOuterr() Result {
	f.t.Helper()
	return Result{
		Out: f.readNew(f.outFile, &f.outOff),
		Err: f.readNew(f.errFile, &f.errOff),
	}
}

func (f *Fixture) readNew(file *os.File, off *int) string {
	f.t.Helper()

	data, err := os.ReadFile(file.Name())
	if err != nil {
		f.t.Fatalf("capture: reading %s: %v", filepath.Base(file.Name()), err)
	}
	if *off > len(data) {
		*off = len(data)
	}
	text := string(data[*off:])
	*off = len(data)
	return text
}
