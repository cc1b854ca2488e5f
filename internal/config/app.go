package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const historyFileName = "input_history"

type AppConfig struct {
	RuntimePath string `env:"DEPT_RUNTIME_PATH" envDefault:".deptdir"`
	Company     string `env:"DEPT_COMPANY" envDefault:"Giggle, Inc."`

	// Session
	Prompt  string `env:"DEPT_PROMPT" envDefault:"> "`
	History bool   `env:"DEPT_HISTORY" envDefault:"false"`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return resolveRuntimePath(c.RuntimePath)
}

// GetHistoryPath is empty when history is disabled.
func (c AppConfig) GetHistoryPath() string {
	if !c.History {
		return ""
	}
	return filepath.Join(c.GetRuntimePath(), historyFileName)
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) GetCompany() string {
	return c.Company
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.GetRuntimePath(), ".env")
}
