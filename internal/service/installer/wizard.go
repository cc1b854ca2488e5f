package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/deptdir/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the setup wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps(defaults config.AppConfig) []Step {
	return []Step{
		NewCompanyStep(defaults.Company),
		NewPromptStep(defaults.Prompt),
		NewHistoryStep(defaults.History),
		NewSaveEnvStep(),
	}
}

type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
}

func initialModel(runtimePath string, defaults config.AppConfig) model {
	return model{
		steps: getSteps(defaults),
		state: NewInstallState(runtimePath, defaults),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.done() {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state)

	if nextStep == nil {
		// Step indicated completion, move to next
		m.currentStep++
		if m.done() {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	m.steps[m.currentStep] = nextStep
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.done() {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Setting up dept") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

func (m model) done() bool {
	return m.currentStep >= len(m.steps)
}

// RunWizard asks for the session settings and writes them to <runtimePath>/.env.
// defaults prefill every step.
func RunWizard(runtimePath string, defaults config.AppConfig) (*InstallState, error) {
	p := tea.NewProgram(initialModel(runtimePath, defaults), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("dept setup interrupted")
	}

	return finalModel.state, nil
}
