package repositories

import (
	"github.com/yigit/hostel/internal/pkg/filestorage"
)

// NewFileRepositories wires the text-file repositories onto two files in storage
func NewFileRepositories(storage *filestorage.LocalStorage, studentFile, attendanceFile string) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentFileRepository(storage.File(studentFile)),
		AttendanceRepository: NewAttendanceFileRepository(storage.File(attendanceFile)),
	}
}
