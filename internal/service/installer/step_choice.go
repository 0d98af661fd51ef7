package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	label string
	value string
}

// ChoiceStep is a single-selection list. apply stores the picked value;
// skip, when set, lets the step pass without showing.
type ChoiceStep struct {
	title   string
	choices []choice
	cursor  int
	apply   func(state *InstallState, value string)
	skip    func(state *InstallState) bool
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Skip(state *InstallState) bool {
	return s.skip != nil && s.skip(state)
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.apply(state, s.choices[s.cursor].value)
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}

func NewStorageStep() Step {
	return &ChoiceStep{
		title: "Select the quiz storage:",
		choices: []choice{
			{label: "SQLite database", value: "sqlite"},
			{label: "In memory (lost on exit)", value: "memory"},
		},
		apply: func(state *InstallState, value string) {
			state.Settings.Storage = value
		},
	}
}

func NewDriverStep() Step {
	return &ChoiceStep{
		title: "Select the SQLite driver:",
		choices: []choice{
			{label: "mattn/go-sqlite3 (cgo)", value: "sqlite3"},
			{label: "modernc.org/sqlite (pure Go)", value: "sqlite"},
		},
		apply: func(state *InstallState, value string) {
			state.Settings.SQLiteDriver = value
		},
		skip: func(state *InstallState) bool {
			return state.Settings.Storage != "sqlite"
		},
	}
}

func NewSeedStep() Step {
	return &ChoiceStep{
		title: "Add the sample quizzes to an empty collection?",
		choices: []choice{
			{label: "Yes", value: "true"},
			{label: "No", value: "false"},
		},
		apply: func(state *InstallState, value string) {
			state.Settings.Seed = value == "true"
		},
	}
}
