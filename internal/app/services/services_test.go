package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/filestorage"
)

const (
	studentFile    = "student_data.txt"
	attendanceFile = "attendance.txt"
)

type testEnv struct {
	dir   string
	store *store.Store
	repos *repositories.Repositories
	svc   *Services
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir)
	require.NoError(t, err)

	st := store.New(models.RoomCapacity)
	repos := repositories.NewFileRepositories(storage, studentFile, attendanceFile)
	return &testEnv{
		dir:   dir,
		store: st,
		repos: repos,
		svc:   NewServices(st, repos, opts, zerolog.Nop()),
	}
}

func (e *testEnv) readFile(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(e.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return ""
	}
	require.NoError(t, err)
	return string(raw)
}

func (e *testEnv) mustAdd(t *testing.T, roll, name, dept string) *models.Student {
	t.Helper()
	st, err := e.svc.Students.Add(context.Background(), roll, name, dept)
	require.NoError(t, err)
	return st
}

// failingRepo fails every call
type failingRepo struct {
	err error
}

func (f failingRepo) LoadAll(ctx context.Context) ([]*models.Student, error) {
	return nil, f.err
}

func (f failingRepo) Append(ctx context.Context, s *models.Student) error {
	return f.err
}

func (f failingRepo) ReplaceAll(ctx context.Context, s []*models.Student) error {
	return f.err
}

func (f failingRepo) Truncate(ctx context.Context) error {
	return f.err
}

type failingAttendanceRepo struct {
	err error
}

func (f failingAttendanceRepo) LoadAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	return nil, f.err
}

func (f failingAttendanceRepo) ReplaceAll(ctx context.Context, r []models.AttendanceRecord) error {
	return f.err
}

func (f failingAttendanceRepo) Truncate(ctx context.Context) error {
	return f.err
}
