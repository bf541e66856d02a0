package controllers

import (
	"context"
	"errors"

	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/console"
)

// AttendanceController handles the attendance menu entry
type AttendanceController struct {
	studentService    *services.StudentService
	attendanceService *services.AttendanceService
	prompt            *console.Prompt
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(studentService *services.StudentService, attendanceService *services.AttendanceService, prompt *console.Prompt) *AttendanceController {
	return &AttendanceController{
		studentService:    studentService,
		attendanceService: attendanceService,
		prompt:            prompt,
	}
}

// Mark records a student as present or absent
func (c *AttendanceController) Mark(ctx context.Context) error {
	roll, ok, err := askRollNumber(c.prompt, "Enter roll number of the student to mark attendance: ")
	if err != nil || !ok {
		return err
	}
	if _, err := c.studentService.Get(ctx, roll); err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}

	choice, err := c.prompt.Ask("Is the student present? (Y/N): ")
	if err != nil {
		return err
	}

	present, err := c.attendanceService.Mark(ctx, roll, choice)
	if err != nil && !errors.Is(err, apperrors.ErrPersistence) {
		HandleConsoleError(c.prompt, err)
		return nil
	}

	if present {
		c.prompt.Println("Attendance marked as present.")
	} else {
		c.prompt.Println("Attendance marked as absent.")
	}
	if err != nil {
		HandleConsoleError(c.prompt, err)
		return nil
	}
	c.prompt.Println("Attendance data saved successfully.")
	return nil
}
