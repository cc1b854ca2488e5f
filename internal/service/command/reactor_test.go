package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/deptdir/internal/core"
	"github.com/sandevgo/deptdir/internal/service/directory"
)

// run feeds lines through the parser and reactor and returns the last response.
func run(t *testing.T, dir directory.Directory, lines ...string) (string, directory.Directory) {
	t.Helper()
	var res string
	for _, line := range lines {
		cmd := Parse(line)
		_, illegal := cmd.(core.IllegalCommand)
		require.False(t, illegal, "unexpected illegal command for %q", line)
		res, dir = React(dir, cmd)
	}
	return res, dir
}

func TestReact_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "empty company",
			lines: []string{"list"},
			want:  "",
		},
		{
			name:  "one employee",
			lines: []string{"add Sam to HR", "list"},
			want:  "HR\n\tSam\n\n",
		},
		{
			name: "many employees",
			lines: []string{
				"add Sam to HR",
				"add Kyle to Finance",
				"add Annie to Finance",
				"add Bobby to Sales",
				"list",
			},
			want: "Finance\n\tAnnie\n\tKyle\n\nHR\n\tSam\n\nSales\n\tBobby\n\n",
		},
		{
			name: "single department",
			lines: []string{
				"add Sam to HR",
				"add Kyle to Finance",
				"add Annie to Finance",
				"add Bobby to Sales",
				"list Finance",
			},
			want: "Annie\nKyle\n",
		},
		{
			name:  "department without employees",
			lines: []string{"add Sam to HR", "list QA"},
			want:  "There are no employees assigned to this department.",
		},
		{
			name:  "add confirmation",
			lines: []string{"add Sam to CustomerService"},
			want:  "Successfully added Sam into CustomerService.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := run(t, directory.New(), tt.lines...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReact_EmptyLeavesDirectoryUnchanged(t *testing.T) {
	_, dir := run(t, directory.New(), "add Sam to HR", "add Kyle to Finance")

	for _, line := range []string{"", "   ", "\t\n"} {
		res, next := React(dir, Parse(line))
		assert.Empty(t, res)
		assert.Equal(t, dir, next)
	}
}

func TestReact_ReadOnlyCommandsLeaveDirectoryUnchanged(t *testing.T) {
	_, dir := run(t, directory.New(), "add Sam to HR")

	for _, cmd := range []core.Command{
		core.ListAllCommand{},
		core.ListDepartmentCommand{Department: core.HR},
		core.ListDepartmentCommand{Department: core.IT},
		core.IllegalCommand{Reason: "nope"},
	} {
		_, next := React(dir, cmd)
		assert.Equal(t, dir, next, cmd.Name())
	}
}

func TestReact_IllegalReturnsReason(t *testing.T) {
	res, _ := React(directory.New(), core.IllegalCommand{Reason: ReasonUnknownCommand})
	assert.Equal(t, ReasonUnknownCommand, res)
}

func TestReact_AddIsIdempotent(t *testing.T) {
	once, _ := run(t, directory.New(), "add Sam to HR", "list")
	twice, _ := run(t, directory.New(), "add Sam to HR", "add Sam to HR", "list")

	assert.Equal(t, once, twice)
}

func TestReact_InsertionOrderDoesNotMatter(t *testing.T) {
	adds := [][]string{
		{"add Sam to HR", "add Kyle to Finance", "add Annie to Finance", "add Bobby to Sales"},
		{"add Bobby to Sales", "add Annie to Finance", "add Sam to HR", "add Kyle to Finance"},
		{"add Kyle to Finance", "add Bobby to Sales", "add Sam to HR", "add Annie to Finance"},
	}

	var outputs []string
	for _, lines := range adds {
		got, _ := run(t, directory.New(), append(lines, "list")...)
		outputs = append(outputs, got)
	}

	for _, got := range outputs[1:] {
		assert.Equal(t, outputs[0], got)
	}
}

func TestReact_TerminatePanics(t *testing.T) {
	assert.Panics(t, func() {
		React(directory.New(), core.TerminateCommand{})
	})
}
