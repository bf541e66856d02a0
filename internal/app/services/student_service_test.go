package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/apperrors"
)

func TestParseRollNumber(t *testing.T) {
	roll, err := ParseRollNumber("00042")
	require.NoError(t, err)
	assert.Equal(t, models.RollNumber(42), roll)

	for _, in := range []string{"", "1234", "123456", "12a45", "-1234"} {
		_, err := ParseRollNumber(in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRollNumber, in)
	}
}

func TestStudentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("appends one line", func(t *testing.T) {
		env := newTestEnv(t, Options{})
		st := env.mustAdd(t, "10001", "Alice", "cse")

		assert.Equal(t, models.DepartmentCSE, st.Department)
		assert.True(t, st.Present)
		assert.Equal(t, "Alice,10001,CSE\n", env.readFile(t, studentFile))
	})

	t.Run("duplicate roll leaves registry and file untouched", func(t *testing.T) {
		env := newTestEnv(t, Options{})
		env.mustAdd(t, "10001", "Alice", "CSE")

		_, err := env.svc.Students.Add(ctx, "10001", "Bob", "AIE")
		assert.ErrorIs(t, err, apperrors.ErrRollNumberExists)
		assert.Len(t, env.svc.Students.List(ctx), 1)
		assert.Equal(t, "Alice,10001,CSE\n", env.readFile(t, studentFile))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		env := newTestEnv(t, Options{})

		_, err := env.svc.Students.Add(ctx, "1001", "Alice", "CSE")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRollNumber)

		_, err = env.svc.Students.Add(ctx, "10001", "Alice1", "CSE")
		assert.ErrorIs(t, err, apperrors.ErrInvalidName)

		_, err = env.svc.Students.Add(ctx, "10001", "Alice", "ECE")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDepartment)

		assert.Empty(t, env.svc.Students.List(ctx))
		assert.Empty(t, env.readFile(t, studentFile))
	})

	t.Run("persistence failure keeps memory", func(t *testing.T) {
		boom := errors.New("disk full")
		st := store.New(models.RoomCapacity)
		repos := &repositories.Repositories{
			StudentRepository:    failingRepo{err: boom},
			AttendanceRepository: failingAttendanceRepo{err: boom},
		}
		svc := NewStudentService(st, repos, zerolog.Nop())

		added, err := svc.Add(ctx, "10001", "Alice", "CSE")
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
		assert.ErrorIs(t, err, boom)
		require.NotNil(t, added)
		assert.True(t, st.HasStudent(10001))
	})
}

func TestStudentService_CheckNewRollNumber(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.mustAdd(t, "10001", "Alice", "CSE")

	_, err := env.svc.Students.CheckNewRollNumber(context.Background(), "10001")
	assert.ErrorIs(t, err, apperrors.ErrRollNumberExists)

	roll, err := env.svc.Students.CheckNewRollNumber(context.Background(), "10002")
	require.NoError(t, err)
	assert.Equal(t, models.RollNumber(10002), roll)
}

func TestStudentService_Search(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, Options{})
	env.mustAdd(t, "10001", "Alice", "CSE")
	env.mustAdd(t, "10002", "Bob", "AIE")

	st, err := env.svc.Students.Search(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RollNumber(10001), st.RollNumber)

	st, err = env.svc.Students.Search(ctx, "10002")
	require.NoError(t, err)
	assert.Equal(t, "Bob", st.Name)

	_, err = env.svc.Students.Search(ctx, "99999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = env.svc.Students.Search(ctx, "Carol")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSearchTerm)
}

func TestStudentService_Modify(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, Options{})
	env.mustAdd(t, "10001", "Alice", "CSE")
	env.mustAdd(t, "10002", "Bob", "AIE")

	st, err := env.svc.Students.Modify(ctx, 10001, "Alicia", "cys")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", st.Name)
	assert.Equal(t, models.DepartmentCYS, st.Department)
	assert.Equal(t, "Alicia,10001,CYS\nBob,10002,AIE\n", env.readFile(t, studentFile))

	_, err = env.svc.Students.Modify(ctx, 10001, "Al1ce", "CSE")
	assert.ErrorIs(t, err, apperrors.ErrInvalidName)
	_, err = env.svc.Students.Modify(ctx, 10001, "Alice", "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDepartment)
	assert.Equal(t, "Alicia", st.Name)

	_, err = env.svc.Students.Modify(ctx, 20000, "Carol", "CSE")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_Remove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, Options{})
	env.mustAdd(t, "10001", "Alice", "CSE")
	env.mustAdd(t, "10002", "Bob", "AIE")
	require.NoError(t, env.svc.Rooms.Allocate(ctx, 3, 10001))

	require.NoError(t, env.svc.Students.Remove(ctx, 10001))

	_, err := env.svc.Students.Get(ctx, 10001)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.False(t, env.store.Room(3).Contains(10001))
	assert.Equal(t, "Bob,10002,AIE\n", env.readFile(t, studentFile))
	assert.Equal(t, "10002,P\n", env.readFile(t, attendanceFile))

	assert.ErrorIs(t, env.svc.Students.Remove(ctx, 10001), apperrors.ErrStudentNotFound)
}

func TestStudentService_ListByDepartment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, Options{})
	env.mustAdd(t, "10001", "Alice", "CSE")
	env.mustAdd(t, "10002", "Bob", "AIE")
	env.mustAdd(t, "10003", "Carol", "CSE")

	groups := env.svc.Students.ListByDepartment(ctx)
	require.Len(t, groups, 3)
	assert.Equal(t, models.DepartmentAIE, groups[0].Department)
	assert.Len(t, groups[0].Students, 1)
	assert.Equal(t, models.DepartmentCSE, groups[1].Department)
	require.Len(t, groups[1].Students, 2)
	assert.Equal(t, "Alice", groups[1].Students[0].Name)
	assert.Equal(t, "Carol", groups[1].Students[1].Name)
	assert.Empty(t, groups[2].Students)
}
