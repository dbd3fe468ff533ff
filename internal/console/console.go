// Package console renders run progress for a human watching the wrapper.
// On a TTY it shows an animated status line while the external tool runs;
// under CI or when piped it degrades to plain start/end lines so runner
// logs stay clean.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/swimmwatch/webchanges-action/internal/action"
	"github.com/swimmwatch/webchanges-action/internal/runner"
)

// DefaultWidth is the fallback terminal width when detection fails.
const DefaultWidth = 80

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Console writes progress to a single output stream.
type Console struct {
	out   io.Writer
	plain bool
	width int
}

// New builds a Console for out. Plain mode is selected when out is not a
// terminal, or when CI or NO_COLOR is set.
func New(out io.Writer) *Console {
	c := &Console{out: out, plain: true, width: DefaultWidth}
	f, isFile := out.(*os.File)
	if isFile && term.IsTerminal(int(f.Fd())) &&
		!action.InCI() && os.Getenv("NO_COLOR") == "" {
		c.plain = false
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			c.width = w
		}
	}
	return c
}

// Track runs fn while showing progress for label, and returns fn's results
// untouched. fn is expected to honor ctx cancellation.
func (c *Console) Track(ctx context.Context, label string, fn func(context.Context) (runner.Result, error)) (runner.Result, error) {
	label = cases.Title(language.English).String(label)
	if c.plain {
		fmt.Fprintf(c.out, "▶ %s\n", label)
		res, err := fn(ctx)
		c.printEnd(label, res, err)
		return res, err
	}

	res, rendered, err := trackLive(ctx, c.out, label, fn)
	if !rendered {
		c.printEnd(label, res, err)
	}
	return res, err
}

func (c *Console) printEnd(label string, res runner.Result, err error) {
	fmt.Fprintln(c.out, c.endLine(label, res, err))
}

// endLine formats the final status line, truncated to the terminal width.
func (c *Console) endLine(label string, res runner.Result, err error) string {
	duration := mutedStyle.Render(fmt.Sprintf("(%s)", res.Duration.Round(100*time.Millisecond)))
	var line string
	switch {
	case err != nil:
		line = fmt.Sprintf("%s %s %s %s", errorStyle.Render("✗"), label, duration, err)
	case res.TimedOut:
		line = fmt.Sprintf("%s %s %s timed out", errorStyle.Render("✗"), label, duration)
	case res.ExitCode != 0:
		line = fmt.Sprintf("%s %s %s exit %d", errorStyle.Render("✗"), label, duration, res.ExitCode)
	default:
		line = fmt.Sprintf("%s %s %s", successStyle.Render("✓"), label, duration)
	}
	return runewidth.Truncate(line, c.width, "…")
}
