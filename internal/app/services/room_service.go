package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/validation"
)

// RoomService handles room allocation. Rooms live in memory only.
type RoomService struct {
	store  *store.Store
	opts   Options
	logger zerolog.Logger
}

// NewRoomService creates a new room service
func NewRoomService(st *store.Store, opts Options, logger zerolog.Logger) *RoomService {
	if opts.MinRoom == 0 && opts.MaxRoom == 0 {
		opts.MinRoom, opts.MaxRoom = models.MinRoomNumber, models.MaxRoomNumber
	}
	return &RoomService{
		store:  st,
		opts:   opts,
		logger: logger,
	}
}

// RoomRange returns the advertised room numbers
func (s *RoomService) RoomRange() (int, int) {
	return s.opts.MinRoom, s.opts.MaxRoom
}

func (s *RoomService) checkRange(number int) error {
	if !s.opts.EnforceRoomRange {
		return nil
	}
	if !validation.NewNumericValidation(number).WithMin(s.opts.MinRoom).WithMax(s.opts.MaxRoom).Validate() {
		msg := fmt.Sprintf("room number must be between %d and %d", s.opts.MinRoom, s.opts.MaxRoom)
		return apperrors.NewCustomError(apperrors.ErrRoomOutOfRange, msg).
			WithDetails(map[string]interface{}{"room": number, "min": s.opts.MinRoom, "max": s.opts.MaxRoom})
	}
	return nil
}

// OpenRoom returns the room with number, creating it when absent.
// A full room yields ErrRoomFull; the room stays created.
func (s *RoomService) OpenRoom(ctx context.Context, number int) (*models.Room, error) {
	if err := s.checkRange(number); err != nil {
		return nil, err
	}

	room, created := s.store.RoomOrCreate(number)
	if created {
		s.logger.Debug().Int("room", number).Msg("Room created")
	}
	if room.IsFull() {
		return room, apperrors.ErrRoomFull
	}
	return room, nil
}

// Allocate places a registered student into a room. A student holds at most one room.
func (s *RoomService) Allocate(ctx context.Context, number int, roll models.RollNumber) error {
	room, err := s.OpenRoom(ctx, number)
	if err != nil {
		return err
	}

	student := s.store.Student(roll)
	if student == nil {
		return apperrors.ErrStudentNotFound
	}
	if room.Contains(roll) {
		return apperrors.ErrAlreadyAllocated
	}
	if held := s.store.RoomsOf(roll); len(held) > 0 {
		msg := fmt.Sprintf("student is already allocated to room %d", held[0])
		return apperrors.NewCustomError(apperrors.ErrAllocatedElsewhere, msg).
			WithDetails(map[string]interface{}{"roll": int(roll), "room": held[0], "requested": number})
	}
	if !room.AddStudent(student) {
		return apperrors.NewCustomError(apperrors.ErrRoomFull, "failed to allocate student to the room. Room is already full")
	}

	s.logger.Info().Int("room", number).Int("roll", int(roll)).Msg("Student allocated to room")
	return nil
}

// FindRoom returns an existing room
func (s *RoomService) FindRoom(ctx context.Context, number int) (*models.Room, error) {
	room := s.store.Room(number)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// Deallocate takes a student out of a room. The registry entry is kept.
func (s *RoomService) Deallocate(ctx context.Context, number int, roll models.RollNumber) error {
	room, err := s.FindRoom(ctx, number)
	if err != nil {
		return err
	}
	if !room.RemoveStudent(roll) {
		return apperrors.ErrStudentNotInRoom
	}

	s.logger.Info().Int("room", number).Int("roll", int(roll)).Msg("Student removed from room")
	return nil
}

// Report returns every known room in creation order
func (s *RoomService) Report(ctx context.Context) []*models.Room {
	return s.store.Rooms()
}
