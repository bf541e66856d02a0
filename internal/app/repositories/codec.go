package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/pkg/apperrors"
)

const fieldSeparator = ","

// FormatStudentLine encodes a student as "name,rollNumber,department"
func FormatStudentLine(s *models.Student) string {
	return strings.Join([]string{
		s.Name,
		strconv.Itoa(int(s.RollNumber)),
		s.Department.String(),
	}, fieldSeparator)
}

// ParseStudentLine decodes a "name,rollNumber,department" line.
// The department is kept as written; it is not re-validated here.
func ParseStudentLine(line string) (*models.Student, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", apperrors.ErrMalformedLine, len(fields))
	}

	roll, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid roll number format %q", apperrors.ErrMalformedLine, fields[1])
	}

	return models.NewStudent(
		strings.TrimSpace(fields[0]),
		models.RollNumber(roll),
		models.Department(strings.TrimSpace(fields[2])),
	), nil
}

// FormatAttendanceLine encodes a record as "rollNumber,P|A"
func FormatAttendanceLine(r models.AttendanceRecord) string {
	return strconv.Itoa(int(r.RollNumber)) + fieldSeparator + r.Code()
}

// ParseAttendanceLine decodes a "rollNumber,P|A" line. Any code other than P
// (case-insensitive) reads as absent.
func ParseAttendanceLine(line string) (models.AttendanceRecord, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return models.AttendanceRecord{}, fmt.Errorf("%w: expected 2 fields, got %d", apperrors.ErrMalformedLine, len(fields))
	}

	roll, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("%w: invalid roll number format %q", apperrors.ErrMalformedLine, fields[0])
	}

	return models.AttendanceRecord{
		RollNumber: models.RollNumber(roll),
		Present:    strings.EqualFold(strings.TrimSpace(fields[1]), models.AttendancePresent),
	}, nil
}
