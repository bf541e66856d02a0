package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/db"
	"github.com/yigit/hostel/internal/pkg/apperrors"
	"github.com/yigit/hostel/internal/pkg/dberrors"
	"github.com/yigit/hostel/internal/pkg/logger"
)

const (
	studentsTable          = "students"
	studentsPKeyConstraint = "students_pkey"
)

// StudentPgRepository handles student database operations
type StudentPgRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

var _ StudentRepository = (*StudentPgRepository)(nil)

// NewStudentPgRepository creates a new StudentPgRepository
func NewStudentPgRepository(database *db.PostgresDB) *StudentPgRepository {
	return &StudentPgRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *StudentPgRepository) selectAllQuery() (string, []interface{}, error) {
	return r.sb.Select("name", "roll_number", "department").
		From(studentsTable).
		OrderBy("position ASC").
		ToSql()
}

func (r *StudentPgRepository) insertQuery(students ...*models.Student) (string, []interface{}, error) {
	q := r.sb.Insert(studentsTable).Columns("name", "roll_number", "department")
	for _, st := range students {
		q = q.Values(st.Name, int(st.RollNumber), st.Department.String())
	}
	return q.ToSql()
}

func (r *StudentPgRepository) deleteAllQuery() (string, []interface{}, error) {
	return r.sb.Delete(studentsTable).ToSql()
}

// LoadAll retrieves all students in insertion order
func (r *StudentPgRepository) LoadAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.selectAllQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build load students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var (
			name, dept string
			roll       int
		)
		if err := rows.Scan(&name, &roll, &dept); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, models.NewStudent(name, models.RollNumber(roll), models.Department(dept)))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Append inserts one student
func (r *StudentPgRepository) Append(ctx context.Context, student *models.Student) error {
	sql, args, err := r.insertQuery(student)
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentsPKeyConstraint) {
			logger.Warn().Int("roll", int(student.RollNumber)).Msg("Attempted to create student with duplicate roll number")
			return apperrors.ErrRollNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// ReplaceAll deletes every row and inserts students in order inside one transaction
func (r *StudentPgRepository) ReplaceAll(ctx context.Context, students []*models.Student) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.deleteAll(ctx, tx); err != nil {
			return err
		}
		if len(students) == 0 {
			return nil
		}

		sql, args, err := r.insertQuery(students...)
		if err != nil {
			return fmt.Errorf("failed to build insert students query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting students: %w", err)
		}
		return nil
	})
}

// Truncate deletes every student row
func (r *StudentPgRepository) Truncate(ctx context.Context) error {
	return r.deleteAll(ctx, r.db.Pool)
}

func (r *StudentPgRepository) deleteAll(ctx context.Context, q db.Querier) error {
	sql, args, err := r.deleteAllQuery()
	if err != nil {
		return fmt.Errorf("failed to build delete students query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting students: %w", err)
	}
	return nil
}
