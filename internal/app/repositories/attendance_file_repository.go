package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/pkg/filestorage"
	"github.com/yigit/hostel/internal/pkg/logger"
)

// AttendanceFileRepository stores attendance flags in a "rollNumber,P|A" text file
type AttendanceFileRepository struct {
	file filestorage.LineFile
}

var _ AttendanceRepository = (*AttendanceFileRepository)(nil)

// NewAttendanceFileRepository creates a new attendance file repository
func NewAttendanceFileRepository(file filestorage.LineFile) *AttendanceFileRepository {
	return &AttendanceFileRepository{file: file}
}

// LoadAll reads every well-formed line of the attendance file
func (r *AttendanceFileRepository) LoadAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("error loading attendance data: %w", err)
	}

	records := make([]models.AttendanceRecord, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseAttendanceLine(line)
		if err != nil {
			logger.Warn().Err(err).Str("path", r.file.Path()).Int("line", i+1).Msg("Skipping malformed attendance record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReplaceAll rewrites the whole attendance file
func (r *AttendanceFileRepository) ReplaceAll(ctx context.Context, records []models.AttendanceRecord) error {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, FormatAttendanceLine(rec))
	}
	if err := r.file.WriteLines(lines); err != nil {
		return fmt.Errorf("error saving attendance data: %w", err)
	}
	return nil
}

// Truncate empties the file
func (r *AttendanceFileRepository) Truncate(ctx context.Context) error {
	if err := r.file.Truncate(); err != nil {
		return fmt.Errorf("error deleting attendance data: %w", err)
	}
	return nil
}
