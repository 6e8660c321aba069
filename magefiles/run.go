//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Opens the interactive window using flycam.toml.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	return sh.RunV("go", "run", ".", "run", "--config", "flycam.toml")
}

// Replays the sample orbit script headless.
func (Run) Simulate() error {
	mg.Deps(Test)
	return sh.RunV("go", "run", ".", "simulate", "testbed/replay/testdata/orbit.yaml")
}
