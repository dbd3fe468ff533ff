// webchanges-action materializes the jobs and report configuration for the
// webchanges change-detection tool, runs it, and relays the outcome to
// GitHub Actions.
//
// The two required inputs arrive the way the Actions runner delivers them,
// as INPUT_JOBS and INPUT_CONFIG environment variables. Exit codes:
//
//	0    the tool ran and exited 0
//	2    validation or usage failure (inputs never reached disk)
//	1    working directory not writable, or the tool failed to start
//	124  the WEBCHANGES_TIMEOUT wall-clock budget was exceeded
//	127  the webchanges binary is not on PATH
//
// Any other non-zero code is the tool's own exit code, relayed verbatim.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/swimmwatch/webchanges-action/internal/action"
	"github.com/swimmwatch/webchanges-action/internal/console"
	"github.com/swimmwatch/webchanges-action/internal/input"
	"github.com/swimmwatch/webchanges-action/internal/runner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(stderr, "usage: webchanges-action (inputs via INPUT_JOBS and INPUT_CONFIG)")
		return 2
	}

	// Local development convenience; on a runner there is no .env file.
	_ = godotenv.Load()

	debug := os.Getenv("WEBCHANGES_ACTION_DEBUG") != ""
	commander := action.NewCommander(stdout)
	in := action.ReadInputs()

	if err := input.Validate(in.Jobs, in.Config); err != nil {
		fmt.Fprintf(stderr, "webchanges-action: %v\n", err)
		commander.Error(err.Error())
		return 2
	}

	timeout, err := action.Timeout()
	if err != nil {
		fmt.Fprintf(stderr, "webchanges-action: invalid WEBCHANGES_TIMEOUT: %v\n", err)
		return 2
	}

	// Register credentials with the runner before anything else is emitted,
	// so they never survive into logs.
	secrets := input.Secrets(in.Config)
	for _, s := range secrets {
		commander.Mask(s)
	}
	red := input.NewRedactor(secrets)

	workDir, err := input.WorkDir()
	if err != nil {
		fmt.Fprintf(stderr, "webchanges-action: %v\n", err)
		commander.Error(err.Error())
		return 1
	}
	paths, err := input.Materialize(in.Jobs, in.Config, workDir)
	if err != nil {
		fmt.Fprintf(stderr, "webchanges-action: %v\n", err)
		commander.Error(err.Error())
		return 1
	}
	if debug {
		fmt.Fprintf(stderr, "[DEBUG run] %d job(s) materialized under %s\n", input.CountJobs(in.Jobs), workDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cons := console.New(stderr)
	res, runErr := cons.Track(ctx, "webchanges", func(ctx context.Context) (runner.Result, error) {
		return runner.Run(ctx, runner.Invocation{
			Binary:     os.Getenv("WEBCHANGES_BINARY"),
			JobsPath:   paths.Jobs,
			ConfigPath: paths.Config,
			HooksPath:  paths.Hooks,
			Timeout:    timeout,
			Debug:      debug,
		})
	})

	return action.Report(commander, red, res, runErr)
}
