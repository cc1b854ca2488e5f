package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandevgo/deptdir/pkg/env"
)

// TextStep collects a single value. An empty answer keeps the default.
// Answers that cannot be stored in .env are rejected and the step stays open.
type TextStep struct {
	question string
	input    textinput.Model
	apply    func(state *InstallState, value string)
	err      error
}

func newTextStep(question, def string, apply func(*InstallState, string)) *TextStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Placeholder = def

	return &TextStep{
		question: question,
		input:    ti,
		apply:    apply,
	}
}

func NewCompanyStep(def string) Step {
	return newTextStep("Company name:", def, func(state *InstallState, v string) {
		state.Config.Company = v
	})
}

func NewPromptStep(def string) Step {
	return newTextStep("Session prompt:", def, func(state *InstallState, v string) {
		state.Config.Prompt = v
	})
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if ok && key.String() == "enter" {
		v := s.input.Value()
		if v == "" {
			return nil, nil
		}
		if err := env.ValidateValue(v); err != nil {
			s.err = err
			return s, nil
		}
		s.apply(state, v)
		return nil, nil
	}
	if ok {
		s.err = nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	view := s.question + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}

// HistoryStep toggles the readline history file
type HistoryStep struct {
	choices []string
	cursor  int
}

func NewHistoryStep(enabled bool) Step {
	s := &HistoryStep{choices: []string{"No", "Yes"}}
	if enabled {
		s.cursor = 1
	}
	return s
}

func (s *HistoryStep) Init() tea.Cmd {
	return nil
}

func (s *HistoryStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Config.History = s.choices[s.cursor] == "Yes"
			return nil, nil
		}
	}
	return s, nil
}

func (s *HistoryStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Keep command history between sessions?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
