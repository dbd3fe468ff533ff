//go:build !unix

package runner

import (
	"os/exec"
)

// setProcessGroup is a no-op where process groups are unsupported.
func setProcessGroup(cmd *exec.Cmd) {}

// terminateProcessGroup kills the process directly on non-Unix platforms.
func terminateProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// exitCodeFromError extracts the exit code via ProcessState, which is
// available cross-platform.
func exitCodeFromError(exitErr *exec.ExitError) (int, bool) {
	if exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode(), true
	}
	return 0, false
}
