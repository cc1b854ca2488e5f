package command

import (
	"maps"
	"slices"
	"strings"

	"github.com/sandevgo/deptdir/internal/core"
)

const (
	KeywordAdd  = "add"
	KeywordList = "list"
	KeywordQuit = "quit"
)

type parseFunc func(args []string) core.Command

var keywords = map[string]parseFunc{
	KeywordAdd:  parseAdd,
	KeywordList: parseList,
	KeywordQuit: func([]string) core.Command { return core.TerminateCommand{} },
}

// Keywords returns the accepted leading keywords in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}

// Parse turns a line of input into a command. Tokens are separated by runs of
// whitespace. Keywords, the "to" separator and department names are case-sensitive.
//
// The accepted commands are:
//
//	add <NAME> to <DEPT>
//	list <DEPT>
//	list
//	quit
func Parse(line string) core.Command {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return core.EmptyCommand{}
	}

	parse, ok := keywords[parts[0]]
	if !ok {
		return illegal(ReasonUnknownCommand)
	}
	return parse(parts[1:])
}
