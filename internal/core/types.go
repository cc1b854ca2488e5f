package core

import (
	"fmt"
	"slices"
	"strings"
)

const (
	AppName    = "deptdir"
	AppVersion = "0.1.0"
)

type Employee struct {
	FirstName string
}

func NewEmployee(firstName string) Employee {
	return Employee{FirstName: firstName}
}

func (e Employee) String() string {
	return e.FirstName
}

// Compare orders employees by name.
func (e Employee) Compare(other Employee) int {
	return strings.Compare(e.FirstName, other.FirstName)
}

type Department uint8

const (
	Accounting Department = iota + 1
	CustomerService
	Marketing
	HR
	Sales
	IT
	QA
	Finance
)

var departmentNames = map[Department]string{
	Accounting:      "Accounting",
	CustomerService: "CustomerService",
	Marketing:       "Marketing",
	HR:              "HR",
	Sales:           "Sales",
	IT:              "IT",
	QA:              "QA",
	Finance:         "Finance",
}

var departmentsByName = func() map[string]Department {
	m := make(map[string]Department, len(departmentNames))
	for d, name := range departmentNames {
		m[name] = d
	}
	return m
}()

// ParseDepartment matches token against the department names exactly.
// Matching is case-sensitive: "hr" is not a department.
func ParseDepartment(token string) (Department, bool) {
	d, ok := departmentsByName[token]
	return d, ok
}

func (d Department) String() string {
	if name, ok := departmentNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Department(%d)", uint8(d))
}

func (d Department) Valid() bool {
	_, ok := departmentNames[d]
	return ok
}

// Compare orders departments by name, not by declaration order.
func (d Department) Compare(other Department) int {
	return strings.Compare(d.String(), other.String())
}

// AllDepartments returns every department sorted by name.
func AllDepartments() []Department {
	res := make([]Department, 0, len(departmentNames))
	for d := range departmentNames {
		res = append(res, d)
	}
	slices.SortFunc(res, Department.Compare)
	return res
}
