package repositories

import (
	"context"

	"github.com/yigit/hostel/internal/app/models"
)

// StudentRepository persists student identity records (name, roll, department)
type StudentRepository interface {
	// LoadAll returns every stored student in stored order. Malformed records are skipped.
	LoadAll(ctx context.Context) ([]*models.Student, error)

	// Append stores one new student after the existing ones
	Append(ctx context.Context, student *models.Student) error

	// ReplaceAll rewrites the store so it holds exactly students, in order
	ReplaceAll(ctx context.Context, students []*models.Student) error

	// Truncate removes every student record
	Truncate(ctx context.Context) error
}

// AttendanceRepository persists per-student attendance flags
type AttendanceRepository interface {
	// LoadAll returns every stored attendance record. Malformed records are skipped.
	LoadAll(ctx context.Context) ([]models.AttendanceRecord, error)

	// ReplaceAll rewrites the store from records
	ReplaceAll(ctx context.Context, records []models.AttendanceRecord) error

	// Truncate removes every attendance record
	Truncate(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    StudentRepository
	AttendanceRepository AttendanceRepository
}
