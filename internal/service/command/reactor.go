package command

import (
	"fmt"

	"github.com/sandevgo/deptdir/internal/core"
	"github.com/sandevgo/deptdir/internal/service/directory"
)

var formatter = NewResponseFormatter()

// React applies cmd to dir and returns the response together with the resulting
// directory. Only AddCommand changes the directory.
//
// TerminateCommand must be handled by the caller; passing it here panics.
func React(dir directory.Directory, cmd core.Command) (string, directory.Directory) {
	switch c := cmd.(type) {
	case core.AddCommand:
		return formatter.Added(c.Employee, c.Department), dir.Add(c.Employee, c.Department)
	case core.ListDepartmentCommand:
		return listDepartment(dir, c.Department), dir
	case core.ListAllCommand:
		return listAll(dir), dir
	case core.IllegalCommand:
		return c.Reason, dir
	case core.EmptyCommand:
		return "", dir
	default:
		panic(fmt.Sprintf("unexpected command: %T", cmd))
	}
}

func listDepartment(dir directory.Directory, dept core.Department) string {
	emps := dir.Employees(dept)
	if len(emps) == 0 {
		return formatter.NoEmployees()
	}
	return formatter.Names(emps)
}

func listAll(dir directory.Directory) string {
	depts := dir.Departments()
	blocks := make([]string, 0, len(depts))
	for _, dept := range depts {
		blocks = append(blocks, formatter.Block(dept, dir.Employees(dept)))
	}
	return formatter.Combine(blocks...)
}
