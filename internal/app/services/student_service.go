package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/validation"
)

// StudentService handles registry operations
type StudentService struct {
	store          *store.Store
	studentRepo    repositories.StudentRepository
	attendanceRepo repositories.AttendanceRepository
	logger         zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(st *store.Store, repos *repositories.Repositories, logger zerolog.Logger) *StudentService {
	return &StudentService{
		store:          st,
		studentRepo:    repos.StudentRepository,
		attendanceRepo: repos.AttendanceRepository,
		logger:         logger,
	}
}

// ParseRollNumber checks a five digit roll number entry and converts it
func ParseRollNumber(s string) (models.RollNumber, error) {
	s = strings.TrimSpace(s)
	if !validation.IsRollNumber(s) {
		return 0, apperrors.ErrInvalidRollNumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.ErrInvalidRollNumber
	}
	return models.RollNumber(n), nil
}

// ValidateName checks a student name
func ValidateName(name string) error {
	if !validation.IsName(name) {
		return apperrors.ErrInvalidName
	}
	return nil
}

// ValidateDepartment parses a department code, ignoring case
func ValidateDepartment(s string) (models.Department, error) {
	d, ok := models.ParseDepartment(s)
	if !ok {
		return "", apperrors.ErrInvalidDepartment
	}
	return d, nil
}

// CheckNewRollNumber validates a roll number entry and rejects numbers already registered
func (s *StudentService) CheckNewRollNumber(ctx context.Context, input string) (models.RollNumber, error) {
	roll, err := ParseRollNumber(input)
	if err != nil {
		return 0, err
	}
	if s.store.HasStudent(roll) {
		return 0, apperrors.ErrRollNumberExists
	}
	return roll, nil
}

// Add registers a new student and appends it to the student store.
// A persistence failure is returned but the in-memory add is kept.
func (s *StudentService) Add(ctx context.Context, rollInput, name, department string) (*models.Student, error) {
	roll, err := s.CheckNewRollNumber(ctx, rollInput)
	if err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	dept, err := ValidateDepartment(department)
	if err != nil {
		return nil, err
	}

	student := models.NewStudent(name, roll, dept)
	if err := validation.Struct(student); err != nil {
		return nil, apperrors.NewCustomError(err, "student validation failed")
	}

	if !s.store.AddStudent(student) {
		return nil, apperrors.ErrRollNumberExists
	}

	if err := s.studentRepo.Append(ctx, student); err != nil {
		s.logger.Error().Err(err).Int("roll", int(roll)).Msg("Failed to save student data")
		return student, apperrors.NewPersistenceError("error occurred while saving student data", err)
	}

	s.logger.Info().
		Int("roll", int(roll)).
		Str("department", dept.String()).
		Msg("Student added")
	return student, nil
}

// Get returns the registered student with roll
func (s *StudentService) Get(ctx context.Context, roll models.RollNumber) (*models.Student, error) {
	student := s.store.Student(roll)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Search returns the first student whose name equals term ignoring case,
// or whose roll number equals term read as an integer.
func (s *StudentService) Search(ctx context.Context, term string) (*models.Student, error) {
	term = strings.TrimSpace(term)
	if student := s.store.FindByName(term); student != nil {
		return student, nil
	}

	if !validation.IsDigits(term) {
		return nil, apperrors.ErrInvalidSearchTerm
	}
	n, err := strconv.Atoi(term)
	if err != nil {
		return nil, apperrors.ErrInvalidSearchTerm
	}

	student := s.store.Student(models.RollNumber(n))
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Modify replaces the name and department of a student and rewrites the student store
func (s *StudentService) Modify(ctx context.Context, roll models.RollNumber, name, department string) (*models.Student, error) {
	student := s.store.Student(roll)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	dept, err := ValidateDepartment(department)
	if err != nil {
		return nil, err
	}

	student.Name = name
	student.Department = dept

	if err := s.studentRepo.ReplaceAll(ctx, s.store.Students()); err != nil {
		s.logger.Error().Err(err).Int("roll", int(roll)).Msg("Failed to rewrite student data")
		return student, apperrors.NewPersistenceError("error occurred while saving student data", err)
	}

	s.logger.Info().
		Int("roll", int(roll)).
		Str("department", dept.String()).
		Msg("Student modified")
	return student, nil
}

// Remove drops a student from the registry and every room, then rewrites both stores
func (s *StudentService) Remove(ctx context.Context, roll models.RollNumber) error {
	if s.store.RemoveStudent(roll) == nil {
		return apperrors.ErrStudentNotFound
	}

	students := s.store.Students()
	var saveErr error
	if err := s.studentRepo.ReplaceAll(ctx, students); err != nil {
		saveErr = errors.Join(saveErr, err)
	}
	if err := s.attendanceRepo.ReplaceAll(ctx, attendanceRecords(students)); err != nil {
		saveErr = errors.Join(saveErr, err)
	}
	if saveErr != nil {
		s.logger.Error().Err(saveErr).Int("roll", int(roll)).Msg("Failed to persist student removal")
		return apperrors.NewPersistenceError("error occurred while saving student data", saveErr)
	}

	s.logger.Info().Int("roll", int(roll)).Msg("Student removed")
	return nil
}

// List returns every student in registration order
func (s *StudentService) List(ctx context.Context) []*models.Student {
	return s.store.Students()
}

// ListByDepartment groups students by department in AIE, CSE, CYS order.
// Every department is present even when empty.
func (s *StudentService) ListByDepartment(ctx context.Context) []models.DepartmentGroup {
	groups := make([]models.DepartmentGroup, 0, len(models.Departments))
	for _, d := range models.Departments {
		groups = append(groups, models.DepartmentGroup{Department: d, Students: s.store.StudentsByDepartment(d)})
	}
	return groups
}
