package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandevgo/deptdir/internal/core"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Command
	}{
		{name: "empty line", input: "", want: core.EmptyCommand{}},
		{name: "whitespace only", input: "  \t  ", want: core.EmptyCommand{}},
		{name: "newline only", input: "\n", want: core.EmptyCommand{}},
		{name: "quit", input: "quit", want: core.TerminateCommand{}},
		{name: "quit with padding", input: "   quit  \n", want: core.TerminateCommand{}},
		{name: "list all", input: "list", want: core.ListAllCommand{}},
		{
			name:  "list department",
			input: "list Finance",
			want:  core.ListDepartmentCommand{Department: core.Finance},
		},
		{
			name:  "list department ignores extra tokens",
			input: "list HR please",
			want:  core.ListDepartmentCommand{Department: core.HR},
		},
		{name: "list unknown department", input: "list foo", want: core.IllegalCommand{Reason: ReasonDepartmentNotFound}},
		{name: "list lower case department", input: "list hr", want: core.IllegalCommand{Reason: ReasonDepartmentNotFound}},
		{
			name:  "add",
			input: "add Sam to HR",
			want:  core.AddCommand{Employee: core.NewEmployee("Sam"), Department: core.HR},
		},
		{
			name:  "add with runs of whitespace",
			input: "\tadd   Kyle \t to  Finance  ",
			want:  core.AddCommand{Employee: core.NewEmployee("Kyle"), Department: core.Finance},
		},
		{name: "unknown command", input: "delete", want: core.IllegalCommand{Reason: ReasonUnknownCommand}},
		{name: "keyword is case-sensitive", input: "Add Sam to HR", want: core.IllegalCommand{Reason: ReasonUnknownCommand}},
		{name: "upper case quit", input: "QUIT", want: core.IllegalCommand{Reason: ReasonUnknownCommand}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_AddErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReason string
	}{
		{name: "add alone", input: "add", wantReason: ReasonMissingName},
		{name: "add alone with spaces", input: "  add   ", wantReason: ReasonMissingName},
		{name: "missing separator", input: "add Kyle", wantReason: ReasonAddSyntax},
		{name: "wrong separator", input: "add Kyle into Finance", wantReason: ReasonExpectedTo},
		{name: "wrong separator without department", input: "add Kyle into", wantReason: ReasonExpectedTo},
		{name: "separator is case-sensitive", input: "add Kyle To Finance", wantReason: ReasonExpectedTo},
		{name: "missing department", input: "add Kyle to", wantReason: ReasonMissingDepartment},
		{name: "unknown department", input: "add kyle to kyle", wantReason: ReasonDepartmentNotFound},
		{name: "too many tokens", input: "add Kyle to Finance extra", wantReason: ReasonTooManyTokens},
		{name: "too many tokens wins over unknown department", input: "add Kyle to Nope extra", wantReason: ReasonTooManyTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, core.IllegalCommand{Reason: tt.wantReason}, Parse(tt.input))
		})
	}
}

func TestParse_UnknownDepartmentEverywhere(t *testing.T) {
	for _, token := range []string{"foo", "hr", "Engineering", "FINANCE", "Sam"} {
		want := core.IllegalCommand{Reason: ReasonDepartmentNotFound}
		assert.Equal(t, want, Parse("list "+token), token)
		assert.Equal(t, want, Parse("add X to "+token), token)
	}
}

func TestParse_EveryDepartment(t *testing.T) {
	for _, dept := range core.AllDepartments() {
		assert.Equal(t, core.ListDepartmentCommand{Department: dept}, Parse("list "+dept.String()))
		assert.Equal(t,
			core.AddCommand{Employee: core.NewEmployee("Sam"), Department: dept},
			Parse("add Sam to "+dept.String()),
		)
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"add", "list", "quit"}, Keywords())
}
