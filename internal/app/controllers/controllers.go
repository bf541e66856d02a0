// Package controllers turns console answers into service calls and prints the outcome.
package controllers

import (
	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/pkg/console"
)

// Controllers groups every console controller
type Controllers struct {
	Student    *StudentController
	Room       *RoomController
	Attendance *AttendanceController
	Data       *DataController
}

// NewControllers builds all controllers over one prompt
func NewControllers(svc *services.Services, prompt *console.Prompt) *Controllers {
	return &Controllers{
		Student:    NewStudentController(svc.Students, prompt),
		Room:       NewRoomController(svc.Rooms, prompt),
		Attendance: NewAttendanceController(svc.Students, svc.Attendance, prompt),
		Data:       NewDataController(svc.Data, prompt),
	}
}
