package action

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/swimmwatch/webchanges-action/internal/runner"
)

// summaryTailLines bounds how much tool output lands in the step summary.
const summaryTailLines = 40

// Redactor scrubs credential values from text before it is emitted.
// *input.Redactor satisfies this.
type Redactor interface {
	Redact(string) string
}

// Report relays the tool's outcome to the Actions surfaces and returns the
// wrapper's process exit code: 0 on success, the tool's own code on tool
// failure, 124 on timeout, 127 when the binary is missing, 1 for anything
// that prevented the tool from running.
func Report(c *Commander, red Redactor, res runner.Result, runErr error) int {
	stdout := red.Redact(res.Stdout)
	stderr := red.Redact(res.Stderr)

	if stdout != "" {
		c.Group("webchanges output")
		fmt.Fprint(c.out, stdout)
		if !strings.HasSuffix(stdout, "\n") {
			fmt.Fprintln(c.out)
		}
		c.EndGroup()
	}

	code := exitStatus(res, runErr)
	_ = c.SetOutput("exit-code", fmt.Sprintf("%d", res.ExitCode))
	_ = c.SetOutput("timed-out", fmt.Sprintf("%t", res.TimedOut))
	_ = c.AppendSummary(summaryMarkdown(res, stdout, stderr, code))

	switch {
	case runErr != nil:
		c.Error(red.Redact(runErr.Error()))
	case res.TimedOut:
		c.Error(fmt.Sprintf("webchanges exceeded its %s wall-clock budget and was terminated", res.Duration.Round(time.Second)))
	case code != 0:
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = fmt.Sprintf("webchanges exited with code %d", res.ExitCode)
		}
		c.Error(msg)
	}

	return code
}

func exitStatus(res runner.Result, runErr error) int {
	switch {
	case errors.Is(runErr, runner.ErrToolNotFound):
		return 127
	case runErr != nil:
		return 1
	case res.TimedOut:
		return 124
	default:
		return res.ExitCode
	}
}

func summaryMarkdown(res runner.Result, stdout, stderr string, code int) string {
	status := "success ✓"
	switch {
	case res.TimedOut:
		status = "timed out ✗"
	case code != 0:
		status = "failed ✗"
	}

	var b strings.Builder
	b.WriteString("### webchanges run\n\n")
	b.WriteString("| Status | Exit code | Duration |\n")
	b.WriteString("| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %d | %s |\n\n", status, res.ExitCode, res.Duration.Round(time.Millisecond))

	if tail := tailLines(stdout, summaryTailLines); tail != "" {
		b.WriteString("<details><summary>Output</summary>\n\n```\n")
		b.WriteString(tail)
		b.WriteString("\n```\n\n</details>\n")
	}
	if code != 0 && strings.TrimSpace(stderr) != "" {
		b.WriteString("\n```\n")
		b.WriteString(strings.TrimSpace(stderr))
		b.WriteString("\n```\n")
	}
	return b.String()
}

func tailLines(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
