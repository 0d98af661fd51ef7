package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func drive(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestWizard_SQLiteFlow(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "runtime", ".env")
	m := initialModel(NewInstallState(envPath, false))

	m = drive(t, m,
		enter,       // storage: sqlite
		down, enter, // driver: modernc
		enter,     // prompt: default
		enter,     // seed: yes
		nextMsg{}, // finalization
		nextMsg{}, // save
	)

	require.Equal(t, len(m.steps), m.current)
	assert.Equal(t, Settings{
		Storage:      "sqlite",
		SQLiteDriver: "sqlite",
		Prompt:       defaultPrompt,
		Seed:         true,
		Debug:        "0",
	}, m.state.Settings)

	values, err := godotenv.Read(envPath)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", values["QUIZ_STORAGE"])
	assert.Equal(t, "sqlite", values["QUIZ_SQLITE_DRIVER"])
	assert.Equal(t, "quiz > ", values["QUIZ_PROMPT"])
	assert.Equal(t, "true", values["QUIZ_SEED"])
}

func TestWizard_MemorySkipsDriver(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	m := initialModel(NewInstallState(envPath, false))

	m = drive(t, m, down, enter)
	_, isPrompt := m.steps[m.current].(*PromptStep)
	assert.True(t, isPrompt, "driver step must be skipped for memory storage")

	m = drive(t, m, enter, down, enter, nextMsg{}, nextMsg{})
	assert.Equal(t, "memory", m.state.Settings.Storage)
	assert.Empty(t, m.state.Settings.SQLiteDriver)
	assert.False(t, m.state.Settings.Seed)

	values, err := godotenv.Read(envPath)
	require.NoError(t, err)
	assert.Equal(t, "false", values["QUIZ_SEED"])
	assert.NotContains(t, values, "QUIZ_SQLITE_DRIVER")
}

func TestWizard_CtrlC(t *testing.T) {
	m := initialModel(NewInstallState(filepath.Join(t.TempDir(), ".env"), false))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestSaveEnv_ExistingFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("QUIZ_STORAGE=memory\n"), 0600))

	state := NewInstallState(envPath, false)
	state.Settings.Storage = "sqlite"
	assert.ErrorContains(t, SaveEnv(state), "already exists")

	state.Overwrite = true
	require.NoError(t, SaveEnv(state))

	values, err := godotenv.Read(envPath)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", values["QUIZ_STORAGE"])
}
