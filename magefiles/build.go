//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds the flycam binary into bin/.
func (Build) Binary() error {
	return sh.RunV("go", "build", "-o", "bin/flycam", ".")
}

// Runs every test in the module.
func Test() error {
	return sh.RunV("go", "test", "./...")
}
