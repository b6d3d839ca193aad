package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/invisible-hand/handsetup/internal/application/services"
)

// runSteps executes delegated bootstrap steps in order. On a terminal each
// step runs under a spinner; otherwise the steps are logged plainly so
// output stays readable in pipes and logs.
func runSteps(ctx context.Context, steps []services.Step, out io.Writer) error {
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		for _, step := range steps {
			fmt.Fprintf(out, "%s...\n", step.Title)
			if err := step.Run(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	m := newProgressModel(ctx, steps)
	final, err := tea.NewProgram(m, tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	if pm, ok := final.(progressModel); ok {
		return pm.err
	}
	return nil
}

// stepResultMsg reports one finished step back into the update loop.
type stepResultMsg struct {
	index int
	err   error
}

type progressModel struct {
	ctx     context.Context
	spinner spinner.Model
	steps   []services.Step
	current int
	err     error
}

func newProgressModel(ctx context.Context, steps []services.Step) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return progressModel{ctx: ctx, spinner: s, steps: steps}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

// runStep executes one step off the update loop and reports its result.
func (m progressModel) runStep(i int) tea.Cmd {
	step := m.steps[i]
	ctx := m.ctx
	return func() tea.Msg {
		return stepResultMsg{index: i, err: step.Run(ctx)}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil

	case stepResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.current++
		if m.current >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.runStep(m.current)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	var view string
	for i, step := range m.steps {
		switch {
		case i < m.current:
			view += fmt.Sprintf("%s %s\n", successStyle.Render("✓"), step.Title)
		case i == m.current && m.err == nil:
			view += fmt.Sprintf("%s %s\n", m.spinner.View(), step.Title)
		default:
			view += subtleStyle.Render("  "+step.Title) + "\n"
		}
	}
	return view
}
