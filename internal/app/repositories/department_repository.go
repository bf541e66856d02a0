package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/db"
)

const departmentsTable = "departments"

// DepartmentRow is one row of the departments lookup table
type DepartmentRow struct {
	Code models.Department
	Name string
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(database *db.PostgresDB) *DepartmentRepository {
	return &DepartmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *DepartmentRepository) createQuery(dept DepartmentRow) (string, []interface{}, error) {
	return r.sb.Insert(departmentsTable).
		Columns("code", "name").
		Values(dept.Code.String(), dept.Name).
		Suffix("ON CONFLICT (code) DO NOTHING").
		ToSql()
}

// Create inserts a department; it reports false when the code already existed
func (r *DepartmentRepository) Create(ctx context.Context, dept DepartmentRow) (bool, error) {
	sql, args, err := r.createQuery(dept)
	if err != nil {
		return false, fmt.Errorf("failed to build create department query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error creating department: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

