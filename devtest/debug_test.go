package devtest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natelandau/devtest/pkg/ansi"
)

func TestRecorder_RecordAndFlush(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record("x")
	require.Len(t, r.entries, 1)

	r.Flush()
	out := ansi.Strip(buf.String())
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, " Debug ")
}

func TestRecorder_FlushClearsBuffer(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record("x")
	r.Flush()
	written := buf.Len()
	require.Positive(t, written)

	// A second flush with nothing new writes nothing.
	r.Flush()
	assert.Equal(t, written, buf.Len())
}

func TestRecorder_FlushEmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Flush()
	assert.Zero(t, buf.Len())
}

func TestRecorder_TeardownOnPassWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))
	r.failed = func() bool { return false }

	r.Record("quiet")
	r.teardown(false)

	assert.Zero(t, buf.Len())
}

func TestRecorder_TeardownOnFailureFlushes(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))
	r.failed = func() bool { return true }

	r.Record("loud")
	r.teardown(false)

	assert.Contains(t, ansi.Strip(buf.String()), `"loud"`)
}

func TestRecorder_TeardownAlwaysPrint(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))
	r.failed = func() bool { return false }

	r.Record("always")
	r.teardown(true)

	assert.Contains(t, ansi.Strip(buf.String()), `"always"`)

	// The policy flushed once; the failure path must not write again.
	written := buf.Len()
	r.teardown(false)
	assert.Equal(t, written, buf.Len())
}

func TestRecorder_TitledRules(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record(1, Title("state"))
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, " state ")
	assert.Contains(t, out, " /state ")
}

func TestRecorder_ShowType(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record(42, ShowType(true))
	r.Record("no annotation here")
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "(int)")
	assert.NotContains(t, out, "(string)")
}

func TestRecorder_DepthAndLengthOverrides(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record(map[string][]int{"xs": {1, 2, 3}}, MaxDepth(1))
	r.Record([]int{1, 2, 3, 4}, MaxLength(2))
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, `{"xs": …}`)
	assert.Contains(t, out, "[1, 2, … +2 more]")
}

func TestRecorder_PathRelativized(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	dir := t.TempDir()
	p := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	r.Record(Path(p))
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "data.txt")
	assert.NotContains(t, out, r.tempRoot(), "temp root prefix is stripped")
}

func TestRecorder_PathOutsideTempRootKeptWhole(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record(Path("/somewhere/else/file.txt"))
	r.Flush()

	assert.Contains(t, ansi.Strip(buf.String()), "/somewhere/else/file.txt")
}

func TestRecorder_PathStripDisabled(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	dir := t.TempDir()
	p := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	r.Record(Path(p), StripTmpPath(false))
	r.Flush()

	assert.Contains(t, ansi.Strip(buf.String()), p)
}

func TestRecorder_DirectoryTree(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), nil, 0o600))

	r.Record(Path(dir), ListDirContents(true))
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "sub")
	assert.Contains(t, out, "b.txt")
}

func TestRecorder_DirectoryWithoutListingRendersPath(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hidden.txt"), nil, 0o600))

	r.Record(Path(dir))
	r.Flush()

	assert.NotContains(t, ansi.Strip(buf.String()), "hidden.txt")
}

func TestRecorder_FlushReachesStderrUnderCapture(t *testing.T) {
	// Stand in for the process stderr so the flush can be observed.
	stderrFile, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)
	prev := os.Stderr
	os.Stderr = stderrFile
	t.Cleanup(func() {
		os.Stderr = prev
		stderrFile.Close()
	})

	captured := Capture(t)
	r := Debug(t)
	r.failed = func() bool { return true }

	r.Record("important clue")
	r.teardown(false)

	// The on-failure flush lands on the pre-capture stderr, not in the
	// capture file the test is about to discard.
	assert.NotContains(t, captured.ReadOuterr().Err, "important clue")

	data, err := os.ReadFile(stderrFile.Name())
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(string(data)), `"important clue"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stream closed") }

type loggingTB struct {
	testing.TB
	logs []string
}

func (l *loggingTB) Logf(format string, args ...any) {
	l.logs = append(l.logs, fmt.Sprintf(format, args...))
}

func (l *loggingTB) Helper() {}

func TestRecorder_FlushWriteErrorLogged(t *testing.T) {
	lt := &loggingTB{TB: t}
	r := &Recorder{t: lt, out: failingWriter{}, entries: []string{"x"}}

	r.Flush()

	require.Len(t, lt.logs, 1)
	assert.Contains(t, lt.logs[0], "writing debug output")
	assert.Contains(t, lt.logs[0], "stream closed")
	assert.Empty(t, r.entries, "a failed write still counts as the one flush")
}

func TestRecorder_EntriesOrdered(t *testing.T) {
	var buf bytes.Buffer
	r := Debug(t, WithOutput(&buf))

	r.Record("first")
	r.Record("second")
	r.Flush()

	out := ansi.Strip(buf.String())
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}
