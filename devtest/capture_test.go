package devtest

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_StripsANSIByDefault(t *testing.T) {
	captured := Capture(t)

	fmt.Print("\x1b[31mred\x1b[0m")
	fmt.Fprint(os.Stderr, "\x1b[1mbold err\x1b[0m")

	res := captured.ReadOuterr()
	assert.Equal(t, "red", res.Out)
	assert.Equal(t, "bold err", res.Err)
}

func TestCapture_KeepANSI(t *testing.T) {
	captured := Capture(t, KeepANSI())

	fmt.Print("\x1b[31mred\x1b[0m")

	assert.Equal(t, "\x1b[31mred\x1b[0m", captured.ReadOuterr().Out)
}

func TestCapture_DisabledByFlag(t *testing.T) {
	prev := stdFlags.NoStripANSI
	t.Cleanup(func() { stdFlags.NoStripANSI = prev })
	require.NoError(t, stdFlags.NoStripANSI.Set("true"))

	captured := Capture(t)
	fmt.Print("\x1b[31mred\x1b[0m")

	assert.Equal(t, "\x1b[31mred\x1b[0m", captured.ReadOuterr().Out)
}

func TestCapture_ConsumingReads(t *testing.T) {
	captured := Capture(t)

	fmt.Print("\x1b[32mfirst\x1b[0m")
	assert.Equal(t, "first", captured.ReadOuterr().Out)
	assert.Empty(t, captured.ReadOuterr().Out)

	fmt.Print("second")
	assert.Equal(t, "second", captured.ReadOuterr().Out)
}
