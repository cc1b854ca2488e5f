package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/deptdir/pkg/env"
)

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if _, ok := msg.(nextMsg); !ok || s.err != nil {
		return s, nil
	}

	if err := SaveEnv(state); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes state.Config to <RuntimePath>/.env. An existing file is never overwritten.
func SaveEnv(state *InstallState) error {
	if err := os.MkdirAll(state.RuntimePath, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(state.RuntimePath, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	// the .env file is found through the runtime path, so it does not repeat it
	cfg := state.Config
	cfg.RuntimePath = ""

	content, err := env.MarshalEnv(&cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envPath, err)
	}

	state.EnvPath = envPath
	return nil
}
