package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/hostel/internal/app/models"
	appRepos "github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/db"
)

// DefaultDepartments returns the rows seeded into the departments table
func DefaultDepartments() []appRepos.DepartmentRow {
	rows := make([]appRepos.DepartmentRow, 0, len(appModels.Departments))
	for _, code := range appModels.Departments {
		rows = append(rows, appRepos.DepartmentRow{Code: code, Name: appModels.DepartmentNames[code]})
	}
	return rows
}

// CreateDefaultData creates the department lookup rows if they don't exist.
// Students reference these codes, so this must run before any student insert.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(database)

	lgr.Info().Msg("Checking/Creating default departments...")
	var finalErr error

	for _, dept := range DefaultDepartments() {
		created, err := departmentRepo.Create(ctx, dept)
		if err != nil {
			lgr.Error().Err(err).Str("department", dept.Code.String()).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			lgr.Info().Str("department", dept.Code.String()).Msg("Department created")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
