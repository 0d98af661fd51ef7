package installer

// Settings is what the wizard collects. Field tags name the variables
// written to the .env file.
type Settings struct {
	Storage      string `env:"QUIZ_STORAGE"`
	SQLiteDriver string `env:"QUIZ_SQLITE_DRIVER"`
	Prompt       string `env:"QUIZ_PROMPT"`
	Seed         bool   `env:"QUIZ_SEED"`
	Debug        string `env:"QUIZ_DEBUG"`
}

type InstallState struct {
	Settings Settings
	EnvPath  string
	// Overwrite allows replacing an existing .env file.
	Overwrite bool
}

func NewInstallState(envPath string, overwrite bool) *InstallState {
	return &InstallState{
		EnvPath:   envPath,
		Overwrite: overwrite,
	}
}
