package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetHistoryPath() string
	GetLogPath() string
	GetStorage() string
	GetSQLiteDriver() string
	GetPrompt() string
	ShouldSeed() bool
}
