package devtest

import (
	"flag"
	"sync"
	"testing"

	"github.com/natelandau/devtest/internal/config"
)

// stdFlags are the devtest options on the go test command line,
// registered at init so the test binary's flag.Parse picks them up.
var stdFlags = config.RegisterFlags(flag.CommandLine)

var (
	loadOnce sync.Once
	fileCfg  *config.FileConfig
	loadErr  error
)

// settings returns the resolved option sources for the current test.
// The project file is read once per process; a malformed file fails
// the test that first touches it.
func settings(t testing.TB) *config.Settings {
	t.Helper()
	loadOnce.Do(func() {
		fileCfg, loadErr = config.Load()
	})
	if loadErr != nil {
		t.Fatalf("devtest: %v", loadErr)
	}
	return &config.Settings{Flags: stdFlags, File: fileCfg}
}
