// Package services holds the hostel business operations. Each service works
// on the shared in-memory store and persists through the repositories.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
)

// Options carries the hostel rules that services need from configuration
type Options struct {
	MinRoom          int
	MaxRoom          int
	EnforceRoomRange bool
	PINHash          string
}

// Services bundles every service the console needs
type Services struct {
	Students   *StudentService
	Rooms      *RoomService
	Attendance *AttendanceService
	Data       *DataService
}

// NewServices wires all services onto one store and one set of repositories
func NewServices(st *store.Store, repos *repositories.Repositories, opts Options, logger zerolog.Logger) *Services {
	return &Services{
		Students:   NewStudentService(st, repos, logger),
		Rooms:      NewRoomService(st, opts, logger),
		Attendance: NewAttendanceService(st, repos.AttendanceRepository, logger),
		Data:       NewDataService(st, repos, opts.PINHash, logger),
	}
}

// attendanceRecords builds the attendance file content from the registry
func attendanceRecords(students []*models.Student) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, len(students))
	for _, st := range students {
		records = append(records, models.AttendanceRecord{RollNumber: st.RollNumber, Present: st.Present})
	}
	return records
}
