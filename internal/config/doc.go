// Package config handles option declaration and resolution for devtest.
//
// # Configuration Precedence
//
// Every setting is resolved fresh on each access, in the following order
// (highest to lowest priority):
//
//  1. Per-call options (devtest.KeepANSI, devtest.MaxDepth, ...)
//  2. Test binary flags (-no-strip-ansi, -columns, -print-debug, ...)
//  3. Environment variables (DEVTEST_PRINT_DEBUG, DEVTEST_COLUMNS)
//  4. The .devtest.yaml project file
//  5. Hardcoded defaults
//
// "Unset" is represented by a nil pointer, never by a falsy value: an
// explicit false or zero from a higher-priority source wins over a true
// from a lower one.
//
// # Flags
//
// Flags are registered on a *flag.FlagSet supplied by the caller;
// package devtest registers them on flag.CommandLine so that the go
// test binary parses them. Boolean flags are tri-state: passing
// -debug-show-type=false is distinct from not passing the flag at all.
//
// # Project File
//
// The .devtest.yaml file is looked up from the working directory upward
// and read once per process. Recognized keys: strip_ansi, set_columns,
// columns, print_debug, debug_strip_tmp_path, debug_list_dir_contents,
// debug_max_depth, debug_max_length, debug_show_type, show_whitespace.
// A malformed file is a fatal configuration error, not a silent default.
//
// # Environment Variables
//
//   - DEVTEST_PRINT_DEBUG: "true"/"1" to always flush debug output
//   - DEVTEST_COLUMNS: width for the COLUMNS fixture
//   - DEVTEST_DEBUG: set to any non-empty value for config-load diagnostics
package config
