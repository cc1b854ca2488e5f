package core

// Command is a parsed line of input. The set of implementations is closed.
type Command interface {
	Name() string
	command()
}

// EmptyCommand is a blank line.
type EmptyCommand struct{}

type AddCommand struct {
	Employee   Employee
	Department Department
}

type ListDepartmentCommand struct {
	Department Department
}

type ListAllCommand struct{}

// TerminateCommand ends the session. It never reaches the reactor.
type TerminateCommand struct{}

// IllegalCommand is input that was rejected by the parser. Reason is shown to the user as is.
type IllegalCommand struct {
	Reason string
}

func (EmptyCommand) Name() string          { return "empty" }
func (AddCommand) Name() string            { return "add" }
func (ListDepartmentCommand) Name() string { return "list_department" }
func (ListAllCommand) Name() string        { return "list_all" }
func (TerminateCommand) Name() string      { return "terminate" }
func (IllegalCommand) Name() string        { return "illegal" }

func (EmptyCommand) command()          {}
func (AddCommand) command()            {}
func (ListDepartmentCommand) command() {}
func (ListAllCommand) command()        {}
func (TerminateCommand) command()      {}
func (IllegalCommand) command()        {}
