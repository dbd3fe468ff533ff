//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// setProcessGroup runs the tool in its own process group so termination
// reaches any children it spawns (browsers, helpers).
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateProcessGroup sends SIGTERM to the whole group. exec's WaitDelay
// escalates to SIGKILL if the group ignores it.
func terminateProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	return syscall.Kill(-pgid, syscall.SIGTERM)
}

// exitCodeFromError extracts the exit code from an exec.ExitError.
func exitCodeFromError(exitErr *exec.ExitError) (int, bool) {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Exited() {
		return status.ExitStatus(), true
	}
	return 0, false
}
