package directory

import (
	"maps"
	"slices"

	"github.com/sandevgo/deptdir/internal/core"
)

// Directory maps departments to the employees assigned to them.
// The zero value is an empty directory. Add never modifies the receiver,
// so a Directory can be passed around and compared freely.
type Directory struct {
	employees map[core.Department][]core.Employee
}

func New() Directory {
	return Directory{}
}

// Add returns a directory with emp assigned to dept. Adding an employee
// that is already assigned returns the receiver unchanged.
func (d Directory) Add(emp core.Employee, dept core.Department) Directory {
	current := d.employees[dept]
	idx, found := slices.BinarySearchFunc(current, emp, core.Employee.Compare)
	if found {
		return d
	}

	// Create new state
	next := make(map[core.Department][]core.Employee, len(d.employees)+1)
	maps.Copy(next, d.employees)

	set := make([]core.Employee, 0, len(current)+1)
	set = append(set, current[:idx]...)
	set = append(set, emp)
	set = append(set, current[idx:]...)
	next[dept] = set

	return Directory{employees: next}
}

// Employees returns the employees of dept sorted by name, or nil if nobody is assigned.
func (d Directory) Employees(dept core.Department) []core.Employee {
	return slices.Clone(d.employees[dept])
}

func (d Directory) Has(emp core.Employee, dept core.Department) bool {
	_, found := slices.BinarySearchFunc(d.employees[dept], emp, core.Employee.Compare)
	return found
}

// Departments returns the departments that have at least one employee, sorted by name.
func (d Directory) Departments() []core.Department {
	res := slices.Collect(maps.Keys(d.employees))
	slices.SortFunc(res, core.Department.Compare)
	return res
}

// Len is the number of assignments across all departments.
func (d Directory) Len() int {
	n := 0
	for _, emps := range d.employees {
		n += len(emps)
	}
	return n
}
