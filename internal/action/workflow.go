package action

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Commander emits GitHub Actions workflow commands on the step's stdout and
// writes file-based outputs (GITHUB_OUTPUT, GITHUB_STEP_SUMMARY). Outside a
// runner those files are simply absent and the file-based calls are no-ops.
type Commander struct {
	out         io.Writer
	outputPath  string
	summaryPath string
}

// NewCommander builds a Commander writing commands to out and resolving the
// output files from the runner's environment.
func NewCommander(out io.Writer) *Commander {
	return &Commander{
		out:         out,
		outputPath:  os.Getenv("GITHUB_OUTPUT"),
		summaryPath: os.Getenv("GITHUB_STEP_SUMMARY"),
	}
}

// Mask registers a credential value with the runner so it is scrubbed from
// every subsequent log line, including the external tool's own output.
func (c *Commander) Mask(value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(c.out, "::add-mask::%s\n", escapeData(value))
}

// Error surfaces a failure message as a workflow error annotation.
func (c *Commander) Error(msg string) {
	fmt.Fprintf(c.out, "::error::%s\n", escapeData(msg))
}

// Group opens a collapsible log group; EndGroup closes it.
func (c *Commander) Group(name string) {
	fmt.Fprintf(c.out, "::group::%s\n", escapeData(name))
}

// EndGroup closes the current log group.
func (c *Commander) EndGroup() {
	fmt.Fprintln(c.out, "::endgroup::")
}

// SetOutput records a step output via the GITHUB_OUTPUT file. Values are
// single-line here; the multiline delimiter syntax is not needed.
func (c *Commander) SetOutput(name, value string) error {
	if c.outputPath == "" {
		return nil
	}
	return appendLine(c.outputPath, fmt.Sprintf("%s=%s\n", name, value))
}

// AppendSummary appends Markdown to the job's step summary.
func (c *Commander) AppendSummary(markdown string) error {
	if c.summaryPath == "" {
		return nil
	}
	return appendLine(c.summaryPath, markdown)
}

func appendLine(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// escapeData encodes the characters the workflow command grammar reserves.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
