package config

import (
	"os"
	"path/filepath"
)

const LogFileName = "quiz.log"

func GetRuntimePath() string {
	return ResolveRuntimePath(os.Getenv("QUIZ_RUNTIME_PATH"))
}

// ResolveRuntimePath anchors relative paths at the user's home directory.
func ResolveRuntimePath(path string) string {
	if path == "" {
		path = ".quizzer"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func GetLogPath() string {
	return filepath.Join(GetRuntimePath(), LogFileName)
}

func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}
