// Package devtest provides small test-support fixtures for go test:
// ANSI-stripped output capture, a fixed COLUMNS value per test,
// whitespace-visible string equality failures, and a buffered debug
// recorder that prints only when a test fails.
//
// # Quick Start
//
//	func TestMyCLI(t *testing.T) {
//		captured := devtest.Capture(t)
//		devtest.SetColumns(t)
//		dbg := devtest.Debug(t)
//
//		run()
//
//		dbg.Record(state)
//		devtest.EqualStrings(t, "red\n", captured.ReadOuterr().Out)
//	}
//
// Every fixture is scoped to one test through [testing.TB.Cleanup] and
// leaves no state behind.
//
// # Configuration
//
// Each feature reads its settings through a fixed precedence chain:
// per-call option > test binary flag > environment > .devtest.yaml
// project file > default. Flags are registered on flag.CommandLine at
// init, so they are passed through go test:
//
//	go test ./... -args -print-debug -columns=120
//
// The .devtest.yaml file is discovered from the working directory
// upward and read once per process. See the internal config package
// for the full key list.
//
// # Capture
//
// [Capture] redirects os.Stdout and os.Stderr for the test and strips
// ANSI color codes from everything read back, so assertions against
// CLI output do not fight escape sequences. Pass [KeepANSI] to keep
// the raw bytes for a single test, or -no-strip-ansi (flag) or
// strip_ansi: false (file) to disable stripping globally.
//
// # Debug Recording
//
// [Debug] returns a [Recorder] whose Record calls render values
// between titled rules and buffer them. The buffer is written to
// stderr at test teardown only when the test failed, or always with
// -print-debug. Record accepts per-call overrides among its
// arguments:
//
//	dbg.Record(cfg, devtest.Title("parsed config"), devtest.MaxDepth(2))
//
// [Path] values render as paths, relativized against the test's temp
// root, and expand into a directory tree with [ListDirContents].
//
// # Concurrency
//
// Capture and SetColumns mutate process-wide state and must not be
// used from parallel tests. The Recorder is test-scoped but its flush
// target, stderr, is shared.
package devtest
