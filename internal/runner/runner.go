// Package runner executes the external webchanges tool and captures its
// outcome. The wrapper performs no retries: a failed fetch inside the tool
// is the tool's concern.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultBinary is the external change-detection executable, resolved on PATH.
const DefaultBinary = "webchanges"

// termGrace is how long a signalled process group gets to exit before SIGKILL.
const termGrace = 2 * time.Second

// ErrToolNotFound means the external binary is not installed or not on PATH.
// Surfaced as exit code 127, matching shell convention.
var ErrToolNotFound = errors.New("webchanges binary not found")

// Invocation describes a single run of the external tool.
type Invocation struct {
	Binary     string        // defaults to DefaultBinary
	JobsPath   string        // --jobs
	ConfigPath string        // --config
	HooksPath  string        // --hooks, empty to omit
	Timeout    time.Duration // wall-clock budget; 0 means no wrapper-level limit
	Env        []string      // defaults to os.Environ()
	Debug      bool          // trace the command line to stderr
}

// Result captures everything the external tool reported. The exit code is
// data, not an error: the tool's own semantics decide what non-zero means.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
}

// Run launches the tool and blocks until it exits, the context is cancelled,
// or the timeout elapses. The tool may legitimately block for the duration
// of its network fetches; only an explicit Timeout bounds that here.
//
// On timeout or cancellation the whole process group is terminated (SIGTERM,
// then SIGKILL after a grace period) so the tool's own children do not
// outlive the run. A completed run returns a nil error even when the exit
// code is non-zero; errors are reserved for failures to run at all.
func Run(ctx context.Context, inv Invocation) (Result, error) {
	binary := inv.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	args := []string{"--jobs", inv.JobsPath, "--config", inv.ConfigPath}
	if inv.HooksPath != "" {
		args = append(args, "--hooks", inv.HooksPath)
	}

	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = inv.Env
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	setProcessGroup(cmd)
	cmd.Cancel = func() error { return terminateProcessGroup(cmd) }
	cmd.WaitDelay = termGrace

	if inv.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG runner] exec: %s %v\n", binary, args)
	}

	start := time.Now()
	runErr := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr == nil {
		res.ExitCode = 0
		return res, nil
	}

	if errors.Is(runErr, exec.ErrNotFound) {
		res.ExitCode = 127
		return res, fmt.Errorf("%w: %v", ErrToolNotFound, runErr)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitCode(exitErr)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.TimedOut = true
		}
		return res, nil
	}

	// Startup failure: the process never ran (bad working dir, fork error).
	res.ExitCode = 1
	return res, fmt.Errorf("starting %s: %w", binary, runErr)
}

func exitCode(exitErr *exec.ExitError) int {
	if code, ok := exitCodeFromError(exitErr); ok && code >= 0 {
		return code
	}
	// Killed by signal: no real exit code, report generic failure.
	return 1
}
