package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultColumns is the width applied when column fixing is enabled
// without an explicit value.
const DefaultColumns = 180

// FileName is the project configuration file, searched for from the
// working directory upward.
const FileName = ".devtest.yaml"

// FileConfig is the project-level configuration from .devtest.yaml.
// Absent keys keep their defaults; present keys override them, so an
// explicit false in the file is honored.
type FileConfig struct {
	StripANSI            bool `yaml:"strip_ansi"`
	SetColumns           bool `yaml:"set_columns"`
	Columns              int  `yaml:"columns"`
	PrintDebug           bool `yaml:"print_debug"`
	DebugStripTmpPath    bool `yaml:"debug_strip_tmp_path"`
	DebugListDirContents bool `yaml:"debug_list_dir_contents"`
	DebugMaxDepth        int  `yaml:"debug_max_depth"`
	DebugMaxLength       int  `yaml:"debug_max_length"`
	DebugShowType        bool `yaml:"debug_show_type"`
	ShowWhitespace       bool `yaml:"show_whitespace"`
}

func defaultFileConfig() *FileConfig {
	return &FileConfig{
		StripANSI:         true,
		Columns:           DefaultColumns,
		DebugStripTmpPath: true,
		ShowWhitespace:    true,
	}
}

// Load reads the project configuration, returning defaults when no
// .devtest.yaml exists. A file that cannot be read or parsed, or that
// carries out-of-range values, is a fatal configuration error.
func Load() (*FileConfig, error) {
	cfg := defaultFileConfig()

	path := findConfigFile()
	if path == "" {
		debugf("no %s found, using defaults", FileName)
		return cfg, nil
	}
	debugf("loading %s", path)

	data, err := os.ReadFile(path) // #nosec G304 - discovered project file
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Columns <= 0 {
		return nil, fmt.Errorf("%s: columns must be positive, got %d", path, cfg.Columns)
	}
	if cfg.DebugMaxDepth < 0 {
		return nil, fmt.Errorf("%s: debug_max_depth must not be negative, got %d", path, cfg.DebugMaxDepth)
	}
	if cfg.DebugMaxLength < 0 {
		return nil, fmt.Errorf("%s: debug_max_length must not be negative, got %d", path, cfg.DebugMaxLength)
	}

	return cfg, nil
}

// findConfigFile looks for .devtest.yaml in the current and parent
// directories.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func debugf(format string, args ...any) {
	if os.Getenv("DEVTEST_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "[devtest config] "+format+"\n", args...)
}

// BoolFlag is a flag.Value that records whether it was set, so an
// explicit false can be told apart from "not passed".
type BoolFlag struct {
	set   bool
	value bool
}

func (b *BoolFlag) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

// Set implements flag.Value.
func (b *BoolFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = v
	b.set = true
	return nil
}

// IsBoolFlag lets the flag package accept the bare -name form.
func (b *BoolFlag) IsBoolFlag() bool { return true }

// Get returns the flag value, or nil when the flag was not passed.
func (b *BoolFlag) Get() *bool {
	if !b.set {
		return nil
	}
	v := b.value
	return &v
}

// IntFlag is a flag.Value for integers with set tracking.
type IntFlag struct {
	set   bool
	value int
}

func (i *IntFlag) String() string {
	if !i.set {
		return ""
	}
	return strconv.Itoa(i.value)
}

// Set implements flag.Value.
func (i *IntFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	i.value = v
	i.set = true
	return nil
}

// Get returns the flag value, or nil when the flag was not passed.
func (i *IntFlag) Get() *int {
	if !i.set {
		return nil
	}
	v := i.value
	return &v
}

// Flags holds the devtest command-line options. Every field is
// tri-state: unset until the flag is passed.
type Flags struct {
	NoStripANSI      BoolFlag
	Columns          IntFlag
	PrintDebug       BoolFlag
	StripTmpPath     BoolFlag
	ListDirContents  BoolFlag
	MaxDepth         IntFlag
	MaxLength        IntFlag
	ShowType         BoolFlag
	NoShowWhitespace BoolFlag
}

// RegisterFlags registers the devtest options on fs and returns the
// struct their values land in.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.Var(&f.NoStripANSI, "no-strip-ansi", "disable ANSI escape stripping from captured output")
	fs.Var(&f.Columns, "columns", "set the COLUMNS environment variable to this value for each test")
	fs.Var(&f.PrintDebug, "print-debug", "always show recorded debug output, not only on failure")
	fs.Var(&f.StripTmpPath, "debug-strip-tmp-path", "strip the test temp dir prefix from recorded paths")
	fs.Var(&f.ListDirContents, "debug-list-dir-contents", "render directory trees for recorded directory paths")
	fs.Var(&f.MaxDepth, "debug-max-depth", "max nesting depth for debug rendering (0 = unbounded)")
	fs.Var(&f.MaxLength, "debug-max-length", "max collection length for debug rendering (0 = unbounded)")
	fs.Var(&f.ShowType, "debug-show-type", "show type annotations in debug output")
	fs.Var(&f.NoShowWhitespace, "no-show-whitespace", "disable whitespace glyphs in string equality failures")
	return f
}

// Settings resolves effective option values from flags, environment,
// and the project file. Values are resolved fresh on every call.
type Settings struct {
	Flags *Flags
	File  *FileConfig
}

// StripANSI reports whether captured output should have ANSI sequences
// removed. The -no-strip-ansi flag and a strip_ansi: false file key
// both disable it; the per-test marker is handled by the caller.
func (s *Settings) StripANSI() bool {
	if v := s.Flags.NoStripANSI.Get(); v != nil && *v {
		return false
	}
	return s.File.StripANSI
}

// ShowWhitespace reports whether whitespace-visible assertion output is
// enabled.
func (s *Settings) ShowWhitespace() bool {
	if v := s.Flags.NoShowWhitespace.Get(); v != nil && *v {
		return false
	}
	return s.File.ShowWhitespace
}

// PrintDebug reports whether recorded debug output should always be
// flushed, not only on failure.
func (s *Settings) PrintDebug() bool {
	if v := s.Flags.PrintDebug.Get(); v != nil {
		return *v
	}
	if v := EnvBool("DEVTEST_PRINT_DEBUG"); v != nil {
		return *v
	}
	return s.File.PrintDebug
}

// ColumnsValue returns the width to fix COLUMNS to, or nil when the
// feature is inactive. The file source keeps its historical two-key
// shape: the set_columns gate enables the feature, the columns key
// supplies the value.
func (s *Settings) ColumnsValue() *int {
	if v := s.Flags.Columns.Get(); v != nil {
		return v
	}
	if v := EnvInt("DEVTEST_COLUMNS"); v != nil {
		return v
	}
	if !s.File.SetColumns {
		return nil
	}
	n := s.File.Columns
	return &n
}

// DebugStripTmpPath resolves the temp-path stripping setting for one
// record call.
func (s *Settings) DebugStripTmpPath(perCall *bool) bool {
	return Resolve(perCall, s.Flags.StripTmpPath.Get(), s.File.DebugStripTmpPath)
}

// DebugListDirContents resolves the directory-listing setting for one
// record call.
func (s *Settings) DebugListDirContents(perCall *bool) bool {
	return Resolve(perCall, s.Flags.ListDirContents.Get(), s.File.DebugListDirContents)
}

// DebugMaxDepth resolves the nesting cutoff for one record call; zero
// means unbounded.
func (s *Settings) DebugMaxDepth(perCall *int) int {
	return Resolve(perCall, s.Flags.MaxDepth.Get(), s.File.DebugMaxDepth)
}

// DebugMaxLength resolves the collection cutoff for one record call;
// zero means unbounded.
func (s *Settings) DebugMaxLength(perCall *int) int {
	return Resolve(perCall, s.Flags.MaxLength.Get(), s.File.DebugMaxLength)
}

// DebugShowType resolves the type-annotation setting for one record
// call.
func (s *Settings) DebugShowType(perCall *bool) bool {
	return Resolve(perCall, s.Flags.ShowType.Get(), s.File.DebugShowType)
}
