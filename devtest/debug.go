package devtest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/natelandau/devtest/internal/capture"
	"github.com/natelandau/devtest/pkg/pretty"
)

// Path marks a string value as a filesystem path for Record. Path
// values render as path strings, relativized against the test's temp
// root, instead of as quoted strings.
type Path string

// Recorder buffers pretty-rendered debug values for one test and
// writes them to the diagnostic stream at teardown, either always or
// only when the test failed.
type Recorder struct {
	t       testing.TB
	out     io.Writer
	entries []string
	failed  func() bool

	tmpOnce sync.Once
	tmpRoot string
}

// Debug returns a per-test debug recorder. At test end the buffer is
// flushed once when -print-debug (or the print_debug key) is active,
// or when the test failed; on a quiet pass nothing is written.
func Debug(t testing.TB, opts ...DebugOption) *Recorder {
	t.Helper()

	r := &Recorder{t: t, failed: t.Failed}
	for _, opt := range opts {
		opt(r)
	}

	s := settings(t)
	t.Cleanup(func() {
		r.teardown(s.PrintDebug())
	})

	return r
}

// teardown applies the flush policy: always print, or print on
// failure, never both.
func (r *Recorder) teardown(alwaysPrint bool) {
	if alwaysPrint {
		r.Flush()
		return
	}
	if r.failed() {
		r.Flush()
	}
}

// Record renders each value and appends the result to the recorder's
// buffer as one titled entry. Arguments of type [RecordOption] act as
// per-call overrides and are not rendered:
//
//	rec.Record(cfg, devtest.Title("parsed config"), devtest.MaxDepth(2))
//
// Overrides left unset resolve through the flag, environment, and
// project-file chain.
func (r *Recorder) Record(vals ...any) {
	r.t.Helper()

	var o recordOptions
	values := make([]any, 0, len(vals))
	for _, v := range vals {
		if opt, ok := v.(RecordOption); ok {
			opt(&o)
			continue
		}
		values = append(values, v)
	}

	s := settings(r.t)
	stripTmp := s.DebugStripTmpPath(o.stripTmpPath)
	listDir := s.DebugListDirContents(o.listDirContents)
	showType := s.DebugShowType(o.showType)
	renderOpts := pretty.Options{
		MaxDepth:  s.DebugMaxDepth(o.maxDepth),
		MaxLength: s.DebugMaxLength(o.maxLength),
	}

	title := o.title
	if title == "" {
		title = "Debug"
	}
	closing := "Debug"
	if o.title != "" {
		closing = "/" + o.title
	}

	width := pretty.TermWidth()
	var sb strings.Builder
	sb.WriteString(pretty.Rule(title, width))
	sb.WriteByte('\n')
	for _, v := range values {
		if showType {
			sb.WriteString(pretty.TypeLabel(pretty.TypeName(v)))
			sb.WriteByte('\n')
		}
		if p, ok := v.(Path); ok {
			sb.WriteString(r.renderPath(string(p), stripTmp, listDir))
		} else {
			sb.WriteString(pretty.Sprint(v, renderOpts))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(pretty.Rule(closing, width))
	sb.WriteByte('\n')

	r.entries = append(r.entries, sb.String())
}

// Flush writes the buffered entries to the diagnostic stream once and
// clears the buffer, so at most one write happens per test no matter
// how teardown and explicit calls interleave. Flushing an empty buffer
// is a no-op.
//
// The default stream is the stderr from before any active Capture
// redirection: teardown cleanups run after Record but before the
// capture fixture restores the streams, and a flush into the capture
// file would be discarded with it.
func (r *Recorder) Flush() {
	if len(r.entries) == 0 {
		return
	}

	out := r.out
	if out == nil {
		out = capture.RealStderr()
	}
	if _, err := io.WriteString(out, strings.Join(r.entries, "\n")); err != nil {
		r.t.Logf("devtest: writing debug output: %v", err)
	}
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
	r.entries = nil
}

// renderPath renders one Path value: relativized against the test's
// temp root when stripping applies, expanded into a directory tree
// when it names a directory and listing is enabled.
func (r *Recorder) renderPath(p string, stripTmp, listDir bool) string {
	display := p
	if stripTmp {
		if rel, ok := relativeTo(r.tempRoot(), p); ok {
			display = rel
		}
	}

	if listDir {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if tree, err := pretty.DirTree(p, display); err == nil {
				return strings.TrimRight(tree, "\n")
			}
		}
	}

	return display
}

// relativeTo reports p relative to root when p lies under it; paths
// outside root keep their full form.
func relativeTo(root, p string) (string, bool) {
	if root == "" {
		return "", false
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// tempRoot is the parent of the test's temp directories, the common
// prefix for every t.TempDir() the test creates.
func (r *Recorder) tempRoot() string {
	r.tmpOnce.Do(func() {
		r.tmpRoot = filepath.Dir(r.t.TempDir())
	})
	return r.tmpRoot
}
