package models

import "strings"

// Attendance codes as written to the attendance file
const (
	AttendancePresent = "P"
	AttendanceAbsent  = "A"
)

// AttendanceRecord is one line of the attendance file
type AttendanceRecord struct {
	RollNumber RollNumber
	Present    bool
}

// Code returns "P" or "A"
func (a AttendanceRecord) Code() string {
	if a.Present {
		return AttendancePresent
	}
	return AttendanceAbsent
}

// ParseAttendanceChoice maps a console Y/N answer to a presence flag
func ParseAttendanceChoice(choice string) (present bool, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(choice)) {
	case "Y":
		return true, true
	case "N":
		return false, true
	default:
		return false, false
	}
}
