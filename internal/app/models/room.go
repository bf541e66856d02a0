package models

// Room holds references to the students allocated to it, in allocation order
type Room struct {
	Number   int
	Capacity int
	Students []*Student
}

// NewRoom creates an empty room. A non-positive capacity falls back to RoomCapacity.
func NewRoom(number, capacity int) *Room {
	if capacity <= 0 {
		capacity = RoomCapacity
	}
	return &Room{
		Number:   number,
		Capacity: capacity,
		Students: make([]*Student, 0, capacity),
	}
}

// IsFull reports whether every bed is taken
func (r *Room) IsFull() bool {
	return len(r.Students) >= r.Capacity
}

// AddStudent appends s unless the room is full
func (r *Room) AddStudent(s *Student) bool {
	if r.IsFull() {
		return false
	}
	r.Students = append(r.Students, s)
	return true
}

// Contains reports whether a student with roll is in the room
func (r *Room) Contains(roll RollNumber) bool {
	return r.StudentByRollNumber(roll) != nil
}

// StudentByRollNumber returns the occupant with roll, or nil
func (r *Room) StudentByRollNumber(roll RollNumber) *Student {
	for _, s := range r.Students {
		if s.RollNumber == roll {
			return s
		}
	}
	return nil
}

// RemoveStudent drops the occupant with roll and reports whether one was found
func (r *Room) RemoveStudent(roll RollNumber) bool {
	for i, s := range r.Students {
		if s.RollNumber == roll {
			r.Students = append(r.Students[:i], r.Students[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every occupant
func (r *Room) Clear() {
	r.Students = r.Students[:0]
}
