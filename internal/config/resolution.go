package config

import (
	"os"
	"strconv"
)

// Resolve returns the first present value in precedence order: the
// per-call override, then the flag value, then the file/default value.
// nil is the "unset" sentinel; a pointer to false or zero is a present
// value and wins over anything below it.
func Resolve[T any](perCall, flagVal *T, fileVal T) T {
	if perCall != nil {
		return *perCall
	}
	if flagVal != nil {
		return *flagVal
	}
	return fileVal
}

// EnvBool reads a boolean from the first set environment variable among
// keys. Returns nil when none is set to a parseable value.
func EnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// EnvInt reads an integer from the named environment variable. Returns
// nil when unset or unparseable.
func EnvInt(key string) *int {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &n
}
