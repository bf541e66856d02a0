package repositories

import (
	"github.com/yigit/hostel/internal/db"
)

// NewPostgresRepositories wires the PostgreSQL repositories onto one pool
func NewPostgresRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentPgRepository(database),
		AttendanceRepository: NewAttendancePgRepository(database),
	}
}
