package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPrompt = "quiz > "

// PromptStep collects the REPL prompt text
type PromptStep struct {
	input textinput.Model
}

func NewPromptStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Placeholder = defaultPrompt

	return &PromptStep{
		input: ti,
	}
}

func (s *PromptStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PromptStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := s.input.Value()
		if val == "" {
			val = defaultPrompt
		}
		state.Settings.Prompt = val
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptStep) View(state *InstallState) string {
	return "Enter the command prompt:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to keep the default)\n"
}
