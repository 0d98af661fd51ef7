package core

const (
	AppName    = "Quizzer"
	AppVersion = "0.1.0"
	AppAuthor  = "Javier Labajo Antequera"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)
