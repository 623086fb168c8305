//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var rippleBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "ripple-e2e-*")
	if err != nil {
		panic(err)
	}

	rippleBinary = filepath.Join(tmpDir, "ripple")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", rippleBinary, "./cmd/ripple")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build ripple binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(rippleBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	// The scripts use `true` as a stand-in compiler; dependency summaries
	// are authored by hand inside the script archives.
	env.Setenv("RIPPLE_COMPILER", "true")

	return nil
}
