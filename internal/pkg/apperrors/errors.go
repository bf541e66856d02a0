package apperrors

import "errors"

// Input errors
var (
	ErrInvalidRollNumber       = errors.New("invalid roll number. Roll number must be 5 digits")
	ErrInvalidName             = errors.New("invalid name. Please enter a valid name (alphabetic characters only)")
	ErrInvalidDepartment       = errors.New("invalid department. Please enter a valid department")
	ErrInvalidNumber           = errors.New("invalid number format. Please enter a numeric value")
	ErrInvalidSearchTerm       = errors.New("invalid search term")
	ErrInvalidAttendanceChoice = errors.New("invalid choice. Attendance not marked")
	ErrRoomOutOfRange          = errors.New("room number out of range")
	ErrInvalidPIN              = errors.New("invalid warden PIN")
)

// Student Errors
var (
	ErrStudentNotFound  = errors.New("no student found with the given roll number")
	ErrRollNumberExists = errors.New("roll number already exists. Please enter a unique roll number")
)

// Room Errors
var (
	ErrRoomNotFound       = errors.New("no room found with the given number")
	ErrRoomFull           = errors.New("room is already full. Cannot add more students")
	ErrAlreadyAllocated   = errors.New("student is already allocated to the room")
	ErrAllocatedElsewhere = errors.New("student is already allocated to another room")
	ErrStudentNotInRoom   = errors.New("no student found in the room with the given roll number")
)

// Persistence errors
var (
	ErrPersistence   = errors.New("persistence failure")
	ErrMalformedLine = errors.New("malformed record line")
)

// NewPersistenceError wraps a storage failure so callers can match ErrPersistence
func NewPersistenceError(message string, cause error) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: message,
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsInputError reports whether err is caused by malformed user input
func IsInputError(err error) bool {
	return Is(err, ErrInvalidRollNumber,
		ErrInvalidName,
		ErrInvalidDepartment,
		ErrInvalidNumber,
		ErrInvalidSearchTerm,
		ErrInvalidAttendanceChoice,
		ErrRoomOutOfRange,
	)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
