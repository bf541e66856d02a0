// Package views renders hostel records as the fixed-width console tables.
package views

import (
	"fmt"
	"io"

	"github.com/yigit/hostel/internal/app/models"
)

const (
	studentBorder     = "+----------------------+------------+----------------------+----------+"
	studentHeader     = "| Name                 | Roll Number | Department           | Present  |"
	reportBorder      = "+------------+-------------------+----------------------+----------+"
	departmentBorder  = "+------------+----------------------+"
	departmentHeader  = "| Roll Number |        Name          |"
	departmentDivider = "-----------------------"
)

// StudentRow formats one student as a table row
func StudentRow(s *models.Student) string {
	return fmt.Sprintf("| %-20s | %-10d | %-20s | %-8s |", s.Name, int(s.RollNumber), s.Department.String(), s.AttendanceLabel())
}

func writeStudentTable(w io.Writer, students []*models.Student) {
	fmt.Fprintln(w, studentBorder)
	fmt.Fprintln(w, studentHeader)
	fmt.Fprintln(w, studentBorder)
	for _, s := range students {
		fmt.Fprintln(w, StudentRow(s))
	}
	fmt.Fprintln(w, studentBorder)
}

// AllStudents renders the full registry
func AllStudents(w io.Writer, students []*models.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}
	fmt.Fprintln(w, "Student Details:")
	writeStudentTable(w, students)
}

// StudentFound renders a single search hit
func StudentFound(w io.Writer, s *models.Student) {
	fmt.Fprintln(w, "Student Found:")
	fmt.Fprintln(w, StudentRow(s))
}

// RoomReport renders every room with its occupants
func RoomReport(w io.Writer, rooms []*models.Room) {
	fmt.Fprintln(w, "Student Room and Attendance Details:")
	fmt.Fprintln(w, reportBorder)
	for _, r := range rooms {
		fmt.Fprintf(w, "Room Number: %d\n", r.Number)
		if len(r.Students) == 0 {
			fmt.Fprintln(w, "No students in the room.")
			continue
		}
		writeStudentTable(w, r.Students)
	}
}

// StudentsByDepartment renders one roll/name table per department
func StudentsByDepartment(w io.Writer, groups []models.DepartmentGroup) {
	fmt.Fprintln(w, "Students by Department:")
	fmt.Fprintln(w, departmentDivider)
	for _, g := range groups {
		fmt.Fprintf(w, "Department: %s\n", g.Department)
		fmt.Fprintln(w, departmentBorder)
		fmt.Fprintln(w, departmentHeader)
		fmt.Fprintln(w, departmentBorder)
		for _, s := range g.Students {
			fmt.Fprintf(w, "| %-11d | %-20s |\n", int(s.RollNumber), s.Name)
		}
		fmt.Fprintln(w, departmentBorder)
		fmt.Fprintln(w)
	}
}

// AttendanceSummary prints how many registered students are present and absent
func AttendanceSummary(w io.Writer, students []*models.Student) {
	present := 0
	for _, s := range students {
		if s.Present {
			present++
		}
	}
	fmt.Fprintf(w, "Attendance Summary: %d present, %d absent, %d total\n", present, len(students)-present, len(students))
}
