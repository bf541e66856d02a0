package models

import "strings"

// Department is one of the hostel's fixed academic departments
type Department string

const (
	DepartmentAIE Department = "AIE"
	DepartmentCSE Department = "CSE"
	DepartmentCYS Department = "CYS"
)

// Departments lists every department in display order
var Departments = []Department{DepartmentAIE, DepartmentCSE, DepartmentCYS}

// ParseDepartment upper-cases s and matches it against the enumeration
func ParseDepartment(s string) (Department, bool) {
	d := Department(strings.ToUpper(strings.TrimSpace(s)))
	return d, d.IsValid()
}

// IsValid reports whether d is a known department
func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// String returns the department code
func (d Department) String() string {
	return string(d)
}

// DepartmentNames maps codes to the names seeded into the database
var DepartmentNames = map[Department]string{
	DepartmentAIE: "Artificial Intelligence Engineering",
	DepartmentCSE: "Computer Science and Engineering",
	DepartmentCYS: "Cyber Security",
}

// DepartmentGroup is one department with its students in registration order
type DepartmentGroup struct {
	Department Department
	Students   []*Student
}
