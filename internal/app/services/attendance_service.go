package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/apperrors"
)

// AttendanceService marks attendance and keeps the attendance store in sync
type AttendanceService struct {
	store          *store.Store
	attendanceRepo repositories.AttendanceRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(st *store.Store, attendanceRepo repositories.AttendanceRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		store:          st,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Mark sets a student present for "Y" and absent for "N", ignoring case,
// then rewrites the whole attendance store. Any other choice changes nothing.
func (s *AttendanceService) Mark(ctx context.Context, roll models.RollNumber, choice string) (bool, error) {
	student := s.store.Student(roll)
	if student == nil {
		return false, apperrors.ErrStudentNotFound
	}

	present, ok := models.ParseAttendanceChoice(choice)
	if !ok {
		return false, apperrors.ErrInvalidAttendanceChoice
	}
	student.Present = present

	s.logger.Info().Int("roll", int(roll)).Bool("present", present).Msg("Attendance marked")

	if err := s.Save(ctx); err != nil {
		return present, err
	}
	return present, nil
}

// Save rewrites the attendance store from the registry
func (s *AttendanceService) Save(ctx context.Context) error {
	if err := s.attendanceRepo.ReplaceAll(ctx, attendanceRecords(s.store.Students())); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save attendance data")
		return apperrors.NewPersistenceError("error occurred while saving attendance data", err)
	}
	return nil
}
