package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/db"
)

const attendanceTable = "attendance"

// AttendancePgRepository handles attendance database operations
type AttendancePgRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

var _ AttendanceRepository = (*AttendancePgRepository)(nil)

// NewAttendancePgRepository creates a new AttendancePgRepository
func NewAttendancePgRepository(database *db.PostgresDB) *AttendancePgRepository {
	return &AttendancePgRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *AttendancePgRepository) selectAllQuery() (string, []interface{}, error) {
	return r.sb.Select("roll_number", "present").
		From(attendanceTable).
		OrderBy("roll_number ASC").
		ToSql()
}

func (r *AttendancePgRepository) insertQuery(records []models.AttendanceRecord) (string, []interface{}, error) {
	q := r.sb.Insert(attendanceTable).Columns("roll_number", "present")
	for _, rec := range records {
		q = q.Values(int(rec.RollNumber), rec.Present)
	}
	return q.ToSql()
}

// LoadAll retrieves all attendance rows
func (r *AttendancePgRepository) LoadAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	sql, args, err := r.selectAllQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build load attendance query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading attendance: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var (
			roll    int
			present bool
		)
		if err := rows.Scan(&roll, &present); err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, models.AttendanceRecord{RollNumber: models.RollNumber(roll), Present: present})
	}
	return records, rows.Err()
}

// ReplaceAll rewrites the attendance table inside one transaction
func (r *AttendancePgRepository) ReplaceAll(ctx context.Context, records []models.AttendanceRecord) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.deleteAll(ctx, tx); err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		sql, args, err := r.insertQuery(records)
		if err != nil {
			return fmt.Errorf("failed to build insert attendance query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting attendance: %w", err)
		}
		return nil
	})
}

// Truncate deletes every attendance row
func (r *AttendancePgRepository) Truncate(ctx context.Context) error {
	return r.deleteAll(ctx, r.db.Pool)
}

func (r *AttendancePgRepository) deleteAll(ctx context.Context, q db.Querier) error {
	sql, args, err := r.sb.Delete(attendanceTable).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting attendance: %w", err)
	}
	return nil
}
