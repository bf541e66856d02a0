package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/pkg/filestorage"
	"github.com/yigit/hostel/internal/pkg/logger"
)

// StudentFileRepository stores students in a "name,rollNumber,department" text file
type StudentFileRepository struct {
	file filestorage.LineFile
}

var _ StudentRepository = (*StudentFileRepository)(nil)

// NewStudentFileRepository creates a new student file repository
func NewStudentFileRepository(file filestorage.LineFile) *StudentFileRepository {
	return &StudentFileRepository{file: file}
}

// LoadAll reads every well-formed line of the student-data file
func (r *StudentFileRepository) LoadAll(ctx context.Context) ([]*models.Student, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("error loading student data: %w", err)
	}

	students := make([]*models.Student, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		st, err := ParseStudentLine(line)
		if err != nil {
			logger.Warn().Err(err).Str("path", r.file.Path()).Int("line", i+1).Msg("Skipping malformed student record")
			continue
		}
		students = append(students, st)
	}

	logger.Debug().Str("path", r.file.Path()).Int("count", len(students)).Msg("Student data loaded")
	return students, nil
}

// Append writes one line for student at the end of the file
func (r *StudentFileRepository) Append(ctx context.Context, student *models.Student) error {
	if err := r.file.AppendLine(FormatStudentLine(student)); err != nil {
		return fmt.Errorf("error saving student data: %w", err)
	}
	return nil
}

// ReplaceAll rewrites the whole file from students
func (r *StudentFileRepository) ReplaceAll(ctx context.Context, students []*models.Student) error {
	lines := make([]string, 0, len(students))
	for _, st := range students {
		lines = append(lines, FormatStudentLine(st))
	}
	if err := r.file.WriteLines(lines); err != nil {
		return fmt.Errorf("error rewriting student data: %w", err)
	}
	return nil
}

// Truncate empties the file
func (r *StudentFileRepository) Truncate(ctx context.Context) error {
	if err := r.file.Truncate(); err != nil {
		return fmt.Errorf("error deleting student data: %w", err)
	}
	return nil
}
