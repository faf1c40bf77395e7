//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	mainPkg = "./cmd/game"
)

type Build mg.Namespace

// Compiles the game into bin/.
func (Build) Game() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, "flappy")
	return sh.RunV("go", "build", "-o", out, mainPkg)
}

// Runs go mod tidy.
func (Build) Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	args := []string{"test", "./..."}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	return sh.RunV("go", args...)
}

// Runs the world step benchmark.
func (Test) Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", "BenchmarkWorld", "./internal/application/system/")
}

// Re-runs a recorded session headless. Usage: mage test:replay run.json
func (Test) Replay(file string) error {
	mg.Deps(Build.Game)
	fmt.Println("Verifying", file)
	return sh.RunV(filepath.Join(binDir, "flappy"), "-verify", file, "-mute")
}

// Deletes build output.
func Clean() error {
	return sh.Rm(binDir)
}
