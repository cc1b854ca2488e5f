package cli

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/sandevgo/deptdir/internal/core"
	"github.com/sandevgo/deptdir/internal/service/command"
)

// NewReadLine creates a session reading from the terminal, with completion for
// keywords and department names.
func NewReadLine(cfg core.AppConfig, opts ...Option) (*Session, error) {
	historyPath := cfg.GetHistoryPath()
	if historyPath != "" {
		// Ensure runtime directory exists
		if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
			return nil, fmt.Errorf("failed to create runtime directory: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.GetPrompt(),
		HistoryFile:     historyPath,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       command.KeywordQuit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	opts = append([]Option{WithCompany(cfg.GetCompany()), withCloser(rl)}, opts...)
	return NewSession(rl, rl.Stdout(), opts...), nil
}

func newCompleter() *readline.PrefixCompleter {
	depts := make([]readline.PrefixCompleterInterface, 0, len(core.AllDepartments()))
	for _, d := range core.AllDepartments() {
		depts = append(depts, readline.PcItem(d.String()))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(command.Keywords()))
	for _, kw := range command.Keywords() {
		if kw == command.KeywordList {
			items = append(items, readline.PcItem(kw, depts...))
			continue
		}
		items = append(items, readline.PcItem(kw))
	}
	return readline.NewPrefixCompleter(items...)
}
