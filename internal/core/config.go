package core

type AppConfig interface {
	GetRuntimePath() string
	GetHistoryPath() string
	GetPrompt() string
	GetCompany() string
}
