package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swimmwatch/webchanges-action/internal/runner"
)

// trackLive runs fn under an animated status line. rendered reports whether
// the program printed the final line itself; on a bubbletea failure the
// caller falls back to plain rendering.
func trackLive(ctx context.Context, out io.Writer, label string, fn func(context.Context) (runner.Result, error)) (res runner.Result, rendered bool, err error) {
	m := newProgressModel(label)
	program := tea.NewProgram(m,
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	// fn runs exactly once; the buffered channel keeps its result available
	// even if the program dies before the Send is observed.
	done := make(chan resultMsg, 1)
	go func() {
		r, e := fn(ctx)
		msg := resultMsg{res: r, err: e}
		done <- msg
		program.Send(msg)
	}()

	final, runErr := program.Run()
	if runErr != nil {
		msg := <-done
		return msg.res, false, msg.err
	}

	pm := final.(progressModel)
	return pm.res, true, pm.err
}

type resultMsg struct {
	res runner.Result
	err error
}

type progressModel struct {
	label string
	spin  spinner.Model
	start time.Time

	done bool
	res  runner.Result
	err  error
}

func newProgressModel(label string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	return progressModel{label: label, spin: s, start: time.Now()}
}

func (m progressModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.done = true
		m.res = msg.res
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return m.finalView()
	}
	elapsed := mutedStyle.Render(fmt.Sprintf("(%s)", time.Since(m.start).Round(time.Second)))
	return fmt.Sprintf("%s %s %s\n", m.spin.View(), m.label, elapsed)
}

func (m progressModel) finalView() string {
	duration := mutedStyle.Render(fmt.Sprintf("(%s)", m.res.Duration.Round(100*time.Millisecond)))
	switch {
	case m.err != nil:
		return fmt.Sprintf("%s %s %s %s\n", errorStyle.Render("✗"), m.label, duration, m.err)
	case m.res.TimedOut:
		return fmt.Sprintf("%s %s %s timed out\n", errorStyle.Render("✗"), m.label, duration)
	case m.res.ExitCode != 0:
		return fmt.Sprintf("%s %s %s exit %d\n", errorStyle.Render("✗"), m.label, duration, m.res.ExitCode)
	default:
		return fmt.Sprintf("%s %s %s\n", successStyle.Render("✓"), m.label, duration)
	}
}
