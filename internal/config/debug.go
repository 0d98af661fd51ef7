package config

import "os"

func IsDebug() bool {
	return os.Getenv("QUIZ_DEBUG") == "1"
}
