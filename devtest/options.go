package devtest

import "io"

// CaptureOption configures a single Capture fixture.
type CaptureOption func(*captureOptions)

type captureOptions struct {
	keepANSI bool
}

// KeepANSI keeps raw ANSI escape sequences in this test's captured
// output, overriding the global stripping setting.
func KeepANSI() CaptureOption {
	return func(o *captureOptions) {
		o.keepANSI = true
	}
}

// ColumnsOption configures a single SetColumns call.
type ColumnsOption func(*columnsOptions)

type columnsOptions struct {
	width *int
}

// Columns overrides the fixed terminal width for this test only.
func Columns(n int) ColumnsOption {
	return func(o *columnsOptions) {
		o.width = &n
	}
}

// DebugOption configures a Recorder.
type DebugOption func(*Recorder)

// WithOutput redirects flushed debug output away from stderr, mainly
// for tests of the recorder itself.
func WithOutput(w io.Writer) DebugOption {
	return func(r *Recorder) {
		r.out = w
	}
}

// RecordOption is a per-call override for one Record call. Record
// recognizes these among its value arguments and does not render them.
type RecordOption func(*recordOptions)

type recordOptions struct {
	title           string
	stripTmpPath    *bool
	listDirContents *bool
	maxDepth        *int
	maxLength       *int
	showType        *bool
}

// Title labels the rules around one recorded entry.
func Title(s string) RecordOption {
	return func(o *recordOptions) {
		o.title = s
	}
}

// StripTmpPath overrides temp-path stripping for one Record call.
func StripTmpPath(v bool) RecordOption {
	return func(o *recordOptions) {
		o.stripTmpPath = &v
	}
}

// ListDirContents overrides directory-tree expansion for one Record
// call.
func ListDirContents(v bool) RecordOption {
	return func(o *recordOptions) {
		o.listDirContents = &v
	}
}

// MaxDepth overrides the nesting cutoff for one Record call; zero
// means unbounded.
func MaxDepth(n int) RecordOption {
	return func(o *recordOptions) {
		o.maxDepth = &n
	}
}

// MaxLength overrides the per-collection cutoff for one Record call;
// zero means unbounded.
func MaxLength(n int) RecordOption {
	return func(o *recordOptions) {
		o.maxLength = &n
	}
}

// ShowType overrides type annotation for one Record call.
func ShowType(v bool) RecordOption {
	return func(o *recordOptions) {
		o.showType = &v
	}
}
