package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/hostel/internal/app/models"
	"github.com/yigit/hostel/internal/app/repositories"
	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/pkg/auth"
	"github.com/yigit/hostel/internal/pkg/filestorage"
)

type session struct {
	dir string
	out *bytes.Buffer
	sh  *Shell
	st  *store.Store
}

// rewriteFailingStudents appends normally but cannot rewrite the student file
type rewriteFailingStudents struct {
	repositories.StudentRepository
}

func (rewriteFailingStudents) ReplaceAll(ctx context.Context, students []*models.Student) error {
	return errors.New("disk full")
}

func newSession(t *testing.T, capacity int, input ...string) *session {
	t.Helper()
	return newSessionWith(t, capacity, services.Options{}, nil, input...)
}

func newSessionWith(t *testing.T, capacity int, opts services.Options, wrap func(*repositories.Repositories), input ...string) *session {
	t.Helper()
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir)
	require.NoError(t, err)

	st := store.New(capacity)
	repos := repositories.NewFileRepositories(storage, "student_data.txt", "attendance.txt")
	if wrap != nil {
		wrap(repos)
	}
	svc := services.NewServices(st, repos, opts, zerolog.Nop())

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	return &session{dir: dir, out: out, sh: NewShell(svc, in, out, zerolog.Nop()), st: st}
}

func (s *session) file(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	require.NoError(t, err)
	return string(raw)
}

func TestShell_AliceScenario(t *testing.T) {
	s := newSession(t, 4,
		"1", "10001", "Alice", "cse",
		"6", "3", "10001",
		"8", "10001", "N",
		"7", "3", "10001",
		"2",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Attendance data loaded successfully.")
	assert.Contains(t, out, "Student added successfully.")
	assert.Contains(t, out, "Enter room number (1-10): ")
	assert.Contains(t, out, "Student allocated to the room successfully.")
	assert.Contains(t, out, "Attendance marked as absent.")
	assert.Contains(t, out, "Student removed from the room successfully.")
	assert.Contains(t, out, "| Alice                | 10001      | CSE                  | Absent   |")

	assert.Equal(t, "Alice,10001,CSE\n", s.file(t, "student_data.txt"))
	assert.Equal(t, "10001,A\n", s.file(t, "attendance.txt"))
	assert.False(t, s.st.Room(3).Contains(10001))
	assert.True(t, s.st.HasStudent(10001))
}

func TestShell_InvalidChoices(t *testing.T) {
	s := newSession(t, 4, "abc", "99")

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Invalid choice format. Please enter a numeric value.")
	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Equal(t, 3, strings.Count(out, "-------Welcome to Hostel Management system of the YBAnnex-------"))
}

func TestShell_AddRepromptsUntilValid(t *testing.T) {
	s := newSession(t, 4, "1", "123", "10001", "Al1ce", "Alice", "XYZ", "AIE", "12")

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Invalid roll number. Roll number must be 5 digits.")
	assert.Contains(t, out, "Invalid name. Please enter a valid name (alphabetic characters only): ")
	assert.Contains(t, out, "Invalid department. Please enter a valid department.")
	assert.Equal(t, "Alice,10001,AIE\n", s.file(t, "student_data.txt"))
}

func TestShell_DuplicateRollNumber(t *testing.T) {
	s := newSession(t, 4,
		"1", "10001", "Alice", "CSE",
		"1", "10001",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	assert.Contains(t, s.out.String(), "Roll number already exists. Please enter a unique roll number.")
	assert.Equal(t, "Alice,10001,CSE\n", s.file(t, "student_data.txt"))
}

func TestShell_RoomFullBeforeRollPrompt(t *testing.T) {
	s := newSession(t, 1,
		"1", "10001", "Alice", "CSE",
		"1", "10002", "Bob", "AIE",
		"6", "2", "10001",
		"6", "2",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Room is already full. Cannot add more students.")
	assert.Equal(t, 1, strings.Count(out, "Enter roll number of the student to allocate: "))
}

func TestShell_SearchAndNotFound(t *testing.T) {
	s := newSession(t, 4,
		"1", "10001", "Alice", "CSE",
		"3", "ALICE",
		"3", "55555",
		"3", "nobody",
		"5", "x",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Student Found:")
	assert.Contains(t, out, "No student found with the given search term.")
	assert.Contains(t, out, "Invalid search term.")
	assert.Contains(t, out, "Invalid roll number format. Please enter a numeric value.")
}

func TestShell_DeleteAll(t *testing.T) {
	s := newSession(t, 4,
		"1", "10001", "Alice", "CSE",
		"11",
		"2",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "All data deleted successfully.")
	assert.Contains(t, out, "No students found.")
	assert.Empty(t, s.file(t, "student_data.txt"))
}

func TestShell_EndOfInputInsideEntry(t *testing.T) {
	s := newSession(t, 4, "1", "10001")

	assert.NoError(t, s.sh.Run(context.Background()))
	assert.False(t, s.st.HasStudent(10001))
}

func TestShell_ModifyRemoveAndMark(t *testing.T) {
	s := newSession(t, 4,
		"1", "10001", "Alice", "CSE",
		"1", "10002", "Bob", "AIE",
		"4", "10001", "Alicia", "CYS",
		"5", "10002",
		"8", "10001", "X",
		"8", "10001", "y",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Student details modified successfully.")
	assert.Contains(t, out, "Student removed successfully.")
	assert.Contains(t, out, "Invalid choice. Attendance not marked.")
	assert.Contains(t, out, "Attendance marked as present.")
	assert.Equal(t, 1, strings.Count(out, "Attendance data saved successfully."))

	assert.Equal(t, "Alicia,10001,CYS\n", s.file(t, "student_data.txt"))
	assert.Equal(t, "10001,P\n", s.file(t, "attendance.txt"))
	assert.False(t, s.st.HasStudent(10002))
}

func TestShell_SaveFailureStillReportsChange(t *testing.T) {
	s := newSessionWith(t, 4, services.Options{}, func(r *repositories.Repositories) {
		r.StudentRepository = rewriteFailingStudents{r.StudentRepository}
	},
		"1", "10001", "Alice", "CSE",
		"1", "10002", "Bob", "AIE",
		"4", "10001", "Alicia", "CYS",
		"5", "10002",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	saveErr := "Error occurred while saving student data."
	assert.Equal(t, 2, strings.Count(out, saveErr))
	require.Contains(t, out, "Student details modified successfully.")
	assert.Less(t, strings.Index(out, saveErr), strings.Index(out, "Student details modified successfully."))
	assert.Contains(t, out, "Student removed successfully.")

	assert.Equal(t, "Alicia", s.st.Student(10001).Name)
	assert.False(t, s.st.HasStudent(10002))
	assert.Equal(t, "Alice,10001,CSE\nBob,10002,AIE\n", s.file(t, "student_data.txt"))
}

func TestShell_DeleteAllWithWardenPIN(t *testing.T) {
	hash, err := auth.HashPINWithCost("2468", bcrypt.MinCost)
	require.NoError(t, err)

	s := newSessionWith(t, 4, services.Options{PINHash: hash}, nil,
		"1", "10001", "Alice", "CSE",
		"11", "1357",
		"11", "  2468 ",
		"12",
	)

	require.NoError(t, s.sh.Run(context.Background()))

	out := s.out.String()
	assert.Equal(t, 2, strings.Count(out, "Enter warden PIN: "))
	assert.Contains(t, out, "Invalid PIN. Data not deleted.")
	assert.Contains(t, out, "All data deleted successfully.")
	assert.False(t, s.st.HasStudent(10001))
	assert.Empty(t, s.file(t, "student_data.txt"))
}
