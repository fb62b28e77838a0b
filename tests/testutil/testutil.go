// Package testutil provides shared utilities for tests.
package testutil

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

// subprocessEnv marks processes spawned by RunTestBinary so re-executed
// test binaries do not recurse into the runner-behavior tests.
const subprocessEnv = "SCAFFOLD_TEST_SUBPROCESS"

// RunTestBinary re-executes the current test binary with the given harness
// arguments and returns its exit code and combined output.
func RunTestBinary(t *testing.T, args ...string) (int, string) {
	t.Helper()

	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), subprocessEnv+"=1")

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %s: %v", os.Args[0], err)
		}
		return exitErr.ExitCode(), string(out)
	}
	return 0, string(out)
}

// SkipIfSubprocess skips tests that must not run inside a binary spawned
// by RunTestBinary.
func SkipIfSubprocess(t *testing.T) {
	t.Helper()
	if os.Getenv(subprocessEnv) == "1" {
		t.Skip("skipping inside re-executed test binary")
	}
}

// SkipIfShort skips subprocess-spawning tests when -short flag is used.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
}
