//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build compiles the action binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/webchanges-action", "./cmd/webchanges-action")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs everything a pull request must pass.
func CI() error {
	mg.Deps(Vet, Test)
	return Build()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
