// Package store holds the in-memory hostel state shared by the services.
package store

import (
	"strings"
	"sync"

	"github.com/yigit/hostel/internal/app/models"
)

// Store keeps students in registration order and rooms in creation order.
// Student lookups go through a roll-number index.
type Store struct {
	mu           sync.RWMutex
	students     []*models.Student
	index        map[models.RollNumber]int
	rooms        []*models.Room
	roomCapacity int
}

// New creates an empty store whose rooms hold roomCapacity students
func New(roomCapacity int) *Store {
	if roomCapacity <= 0 {
		roomCapacity = models.RoomCapacity
	}
	return &Store{
		index:        make(map[models.RollNumber]int),
		roomCapacity: roomCapacity,
	}
}

// RoomCapacity returns the capacity given to newly created rooms
func (s *Store) RoomCapacity() int {
	return s.roomCapacity
}

// AddStudent appends st and reports false if its roll number is taken
func (s *Store) AddStudent(st *models.Student) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[st.RollNumber]; exists {
		return false
	}
	s.index[st.RollNumber] = len(s.students)
	s.students = append(s.students, st)
	return true
}

// Student returns the student with roll, or nil
func (s *Store) Student(roll models.RollNumber) *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[roll]; ok {
		return s.students[i]
	}
	return nil
}

// HasStudent reports whether roll is registered
func (s *Store) HasStudent(roll models.RollNumber) bool {
	return s.Student(roll) != nil
}

// FindByName returns the first student whose name equals name, ignoring case
func (s *Store) FindByName(name string) *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if strings.EqualFold(st.Name, name) {
			return st
		}
	}
	return nil
}

// RemoveStudent deletes roll from the registry and from every room.
// It returns the removed student, or nil.
func (s *Store) RemoveStudent(roll models.RollNumber) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[roll]
	if !ok {
		return nil
	}
	removed := s.students[i]
	s.students = append(s.students[:i], s.students[i+1:]...)
	s.reindex()

	for _, r := range s.rooms {
		r.RemoveStudent(roll)
	}
	return removed
}

// Students returns a snapshot of the registry in registration order
func (s *Store) Students() []*models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// StudentsByDepartment returns the students of d in registration order
func (s *Store) StudentsByDepartment(d models.Department) []*models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Student
	for _, st := range s.students {
		if st.Department == d {
			out = append(out, st)
		}
	}
	return out
}

// ClearStudents empties the registry and every room's occupant list.
// Rooms themselves stay known.
func (s *Store) ClearStudents() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = nil
	s.index = make(map[models.RollNumber]int)
	for _, r := range s.rooms {
		r.Clear()
	}
}

// Room returns the room with number, or nil
func (s *Store) Room(number int) *models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.room(number)
}

// RoomOrCreate returns the room with number, creating it if absent
func (s *Store) RoomOrCreate(number int) (room *models.Room, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := s.room(number); r != nil {
		return r, false
	}
	r := models.NewRoom(number, s.roomCapacity)
	s.rooms = append(s.rooms, r)
	return r, true
}

// Rooms returns a snapshot of all known rooms in creation order
func (s *Store) Rooms() []*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// RoomsOf returns the numbers of the rooms roll is allocated to
func (s *Store) RoomsOf(roll models.RollNumber) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []int
	for _, r := range s.rooms {
		if r.Contains(roll) {
			out = append(out, r.Number)
		}
	}
	return out
}

func (s *Store) room(number int) *models.Room {
	for _, r := range s.rooms {
		if r.Number == number {
			return r
		}
	}
	return nil
}

func (s *Store) reindex() {
	s.index = make(map[models.RollNumber]int, len(s.students))
	for i, st := range s.students {
		s.index[st.RollNumber] = i
	}
}
