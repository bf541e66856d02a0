package models

// RoomCapacity is the number of beds in every room unless configured otherwise
const RoomCapacity = 4

// Default room number range shown in prompts
const (
	MinRoomNumber = 1
	MaxRoomNumber = 10
)

// RollNumber identifies a student. It is entered as five digits and kept as an
// integer, so "00042" is stored and written back as 42.
type RollNumber int
