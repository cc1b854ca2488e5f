package command

import (
	"github.com/sandevgo/deptdir/internal/core"
)

const separatorTo = "to"

const (
	ReasonUnknownCommand     = "Unknown command."
	ReasonDepartmentNotFound = "Department not found."
	ReasonMissingName        = "You must provide an employee name."
	ReasonAddSyntax          = "Add command syntax: add <NAME> to <DEPT>"
	ReasonExpectedTo         = "Expected 'to' separator."
	ReasonMissingDepartment  = "You must provide a department the employee belongs to."
	ReasonTooManyTokens      = "Found too many tokens for the add command."
)

func parseList(args []string) core.Command {
	if len(args) == 0 {
		return core.ListAllCommand{}
	}

	// only the first token is looked at
	dept, ok := core.ParseDepartment(args[0])
	if !ok {
		return illegal(ReasonDepartmentNotFound)
	}
	return core.ListDepartmentCommand{Department: dept}
}

// parseAdd reports the first problem found scanning left to right.
func parseAdd(args []string) core.Command {
	switch {
	case len(args) < 1:
		return illegal(ReasonMissingName)
	case len(args) < 2:
		return illegal(ReasonAddSyntax)
	case args[1] != separatorTo:
		return illegal(ReasonExpectedTo)
	case len(args) < 3:
		return illegal(ReasonMissingDepartment)
	case len(args) > 3:
		return illegal(ReasonTooManyTokens)
	}

	dept, ok := core.ParseDepartment(args[2])
	if !ok {
		return illegal(ReasonDepartmentNotFound)
	}
	return core.AddCommand{
		Employee:   core.NewEmployee(args[0]),
		Department: dept,
	}
}

func illegal(reason string) core.Command {
	return core.IllegalCommand{Reason: reason}
}
