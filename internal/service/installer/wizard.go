// Package installer is the `quiz setup` terminal wizard. Each Step asks one
// thing and writes the answer into InstallState; the last steps fill
// defaults and save the .env file.
package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

var ErrInterrupted = errors.New("setup interrupted")

// Step is one screen of the wizard. Update returns nil once the step is done.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// skipper is implemented by steps that do not apply to every state.
type skipper interface {
	Skip(state *InstallState) bool
}

func getSteps() []Step {
	return []Step{
		NewStorageStep(),
		NewDriverStep(),
		NewPromptStep(),
		NewSeedStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(),
	}
}

// nextMsg wakes up steps that finish without user input.
type nextMsg struct{}

type model struct {
	steps    []Step
	current  int
	state    *InstallState
	quitting bool
	width    int
	height   int
}

func initialModel(state *InstallState) model {
	return model{
		steps: getSteps(),
		state: state,
	}
}

func (m model) done() bool {
	return m.current >= len(m.steps)
}

func (m model) Init() tea.Cmd {
	if m.done() {
		return nil
	}
	return m.steps[m.current].Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting || m.done() {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	step, cmd := m.steps[m.current].Update(msg, m.state, m.width, m.height)
	if step != nil {
		m.steps[m.current] = step
		return m, cmd
	}

	// the step is finished; move to the next one that applies
	for m.current++; !m.done(); m.current++ {
		if s, ok := m.steps[m.current].(skipper); !ok || !s.Skip(m.state) {
			return m, m.steps[m.current].Init()
		}
	}
	return m, tea.Quit
}

func (m model) View() string {
	switch {
	case m.quitting:
		return "Setup cancelled.\n"
	case m.done():
		return "Configuration complete!\n"
	}
	return titleStyle.Render("Setting up Quizzer") + "\n\n" + m.steps[m.current].View(m.state)
}

// RunWizard runs the wizard full screen and saves the result to envPath.
func RunWizard(envPath string, overwrite bool) (*InstallState, error) {
	final, err := tea.NewProgram(initialModel(NewInstallState(envPath, overwrite)), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("setup wizard failed: %w", err)
	}

	m := final.(model)
	if m.quitting || !m.done() {
		return nil, ErrInterrupted
	}
	return m.state, nil
}
