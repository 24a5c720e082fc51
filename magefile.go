//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target
var Default = Build

// Build compiles the translate binary
func Build() error {
	return sh.RunV("go", "build", "-o", "translate", "./cmd/translate")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/translate")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("translate")
}
