package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/hostel/internal/app/models"
)

func TestStudentRow(t *testing.T) {
	s := models.NewStudent("Alice", 10001, models.DepartmentCSE)
	assert.Equal(t, "| Alice                | 10001      | CSE                  | Present  |", StudentRow(s))

	s.Present = false
	assert.True(t, strings.HasSuffix(StudentRow(s), "| Absent   |"))
}

func TestAllStudents_Empty(t *testing.T) {
	var buf bytes.Buffer
	AllStudents(&buf, nil)
	assert.Equal(t, "No students found.\n", buf.String())
}

func TestRoomReport(t *testing.T) {
	full := models.NewRoom(3, 4)
	full.AddStudent(models.NewStudent("Alice", 10001, models.DepartmentCSE))
	empty := models.NewRoom(7, 4)

	var buf bytes.Buffer
	RoomReport(&buf, []*models.Room{full, empty})

	out := buf.String()
	assert.Contains(t, out, "Room Number: 3\n"+studentBorder+"\n"+studentHeader)
	assert.Contains(t, out, "| Alice                | 10001      |")
	assert.Contains(t, out, "Room Number: 7\nNo students in the room.\n")
}

func TestStudentsByDepartment(t *testing.T) {
	groups := []models.DepartmentGroup{
		{Department: models.DepartmentAIE},
		{Department: models.DepartmentCSE, Students: []*models.Student{models.NewStudent("Bob", 42, models.DepartmentCSE)}},
	}

	var buf bytes.Buffer
	StudentsByDepartment(&buf, groups)

	out := buf.String()
	assert.Contains(t, out, "Department: AIE\n")
	assert.Contains(t, out, "| 42          | Bob                  |\n")
	assert.Less(t, strings.Index(out, "AIE"), strings.Index(out, "CSE"))
}

func TestAttendanceSummary(t *testing.T) {
	absent := models.NewStudent("Bob", 10002, models.DepartmentAIE)
	absent.Present = false

	var buf bytes.Buffer
	AttendanceSummary(&buf, []*models.Student{models.NewStudent("Alice", 10001, models.DepartmentCSE), absent})
	assert.Equal(t, "Attendance Summary: 1 present, 1 absent, 2 total\n", buf.String())
}
