package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/auth"
)

// LoadSummary reports what a startup load put into memory
type LoadSummary struct {
	Students          int
	DuplicateStudents int
	Attendance        int
	UnknownAttendance int
}

// LoadErrors separates the two independent load steps
type LoadErrors struct {
	Students   error
	Attendance error
}

// Err returns the first failure, or nil
func (e LoadErrors) Err() error {
	if e.Students != nil {
		return e.Students
	}
	return e.Attendance
}

// DataService loads state at startup and wipes it on request
type DataService struct {
	store          *store.Store
	studentRepo    repositories.StudentRepository
	attendanceRepo repositories.AttendanceRepository
	pinHash        string
	logger         zerolog.Logger
}

// NewDataService creates a new data service. An empty pinHash disables the PIN check.
func NewDataService(st *store.Store, repos *repositories.Repositories, pinHash string, logger zerolog.Logger) *DataService {
	return &DataService{
		store:          st,
		studentRepo:    repos.StudentRepository,
		attendanceRepo: repos.AttendanceRepository,
		pinHash:        pinHash,
		logger:         logger,
	}
}

// Load reads students first, then applies attendance flags to them.
// Attendance for unknown roll numbers is ignored. A failed step leaves
// whatever was loaded before it.
func (s *DataService) Load(ctx context.Context) (LoadSummary, LoadErrors) {
	var (
		summary LoadSummary
		errs    LoadErrors
	)

	students, err := s.studentRepo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load student data")
		errs.Students = apperrors.NewPersistenceError("error occurred while loading student data", err)
	}
	for _, st := range students {
		if !s.store.AddStudent(st) {
			summary.DuplicateStudents++
			s.logger.Warn().Int("roll", int(st.RollNumber)).Msg("Duplicate roll number in student data, skipping")
			continue
		}
		summary.Students++
	}

	records, err := s.attendanceRepo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load attendance data")
		errs.Attendance = apperrors.NewPersistenceError("error occurred while loading attendance data", err)
	}
	for _, rec := range records {
		st := s.store.Student(rec.RollNumber)
		if st == nil {
			summary.UnknownAttendance++
			continue
		}
		st.Present = rec.Present
		summary.Attendance++
	}

	s.logger.Info().
		Int("students", summary.Students).
		Int("attendance", summary.Attendance).
		Int("unknown_attendance", summary.UnknownAttendance).
		Msg("Hostel data loaded")
	return summary, errs
}

// RequiresPIN reports whether DeleteAll checks a warden PIN
func (s *DataService) RequiresPIN() bool {
	return s.pinHash != ""
}

// DeleteAll truncates both stores and clears the registry and room occupants.
// Rooms stay known. If the student store cannot be truncated nothing is cleared.
func (s *DataService) DeleteAll(ctx context.Context, pin string) error {
	if s.RequiresPIN() && !auth.CheckPIN(s.pinHash, pin) {
		s.logger.Warn().Msg("Delete all rejected: invalid PIN")
		return apperrors.ErrInvalidPIN
	}

	if err := s.studentRepo.Truncate(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete student data")
		return apperrors.NewPersistenceError("error occurred while deleting data", err)
	}
	s.store.ClearStudents()

	if err := s.attendanceRepo.Truncate(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete attendance data")
		return apperrors.NewPersistenceError("error occurred while deleting data", err)
	}

	s.logger.Info().Msg("All data deleted")
	return nil
}
