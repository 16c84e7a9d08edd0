//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build and test everything
var Default = All

// All builds the module and runs the full test suite
func All() error {
	mg.Deps(Build)
	return Test{}.All()
}

// Build compiles all packages
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint when installed
func (Lint) Golangci() error {
	if err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with the race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}
