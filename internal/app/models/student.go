package models

// Student defines a hostel resident
type Student struct {
	Name       string     `validate:"required,alpha"`             // Alphabetic name
	RollNumber RollNumber `validate:"min=0,max=99999"`            // Unique roll number
	Department Department `validate:"required,oneof=AIE CSE CYS"` // Academic department
	Present    bool       // Attendance flag, true until marked absent
}

// NewStudent creates a student who is marked present
func NewStudent(name string, roll RollNumber, department Department) *Student {
	return &Student{
		Name:       name,
		RollNumber: roll,
		Department: department,
		Present:    true,
	}
}

// AttendanceLabel returns the long attendance label used in tables
func (s *Student) AttendanceLabel() string {
	if s.Present {
		return "Present"
	}
	return "Absent"
}
