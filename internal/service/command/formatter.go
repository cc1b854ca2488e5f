package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/deptdir/internal/core"
)

const noEmployeesMessage = "There are no employees assigned to this department."

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Added(emp core.Employee, dept core.Department) string {
	return fmt.Sprintf("Successfully added %s into %s.", emp, dept)
}

// Names renders one employee per line.
func (f *ResponseFormatter) Names(emps []core.Employee) string {
	var sb strings.Builder
	for _, emp := range emps {
		sb.WriteString(emp.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Block renders a department header followed by its indented employees and a blank line.
func (f *ResponseFormatter) Block(dept core.Department, emps []core.Employee) string {
	var sb strings.Builder
	sb.WriteString(dept.String())
	sb.WriteByte('\n')
	for _, emp := range emps {
		sb.WriteByte('\t')
		sb.WriteString(emp.String())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (f *ResponseFormatter) NoEmployees() string {
	return noEmployeesMessage
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}
