package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFile_MissingFileReadsEmpty(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	lines, err := ls.File("nothing.txt").ReadLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLocalFile_AppendThenRead(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	f := ls.File("student_data.txt")

	require.NoError(t, f.AppendLine("Alice,10001,CSE"))
	require.NoError(t, f.AppendLine("Bob,10002,AIE"))

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice,10001,CSE", "Bob,10002,AIE"}, lines)

	raw, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, "Alice,10001,CSE\nBob,10002,AIE\n", string(raw))
}

func TestLocalFile_WriteLinesReplacesContentAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	require.NoError(t, err)
	f := ls.File("attendance.txt")

	require.NoError(t, f.AppendLine("99999,P"))
	require.NoError(t, f.WriteLines([]string{"10001,A", "10002,P"}))

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"10001,A", "10002,P"}, lines)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "attendance.txt", entries[0].Name())
}

func TestLocalFile_ReadStripsCarriageReturn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice,10001,CSE\r\n"), 0o644))

	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	lines, err := ls.File(path).ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice,10001,CSE"}, lines)
}

func TestLocalFile_Truncate(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	f := ls.File("student_data.txt")

	require.NoError(t, f.AppendLine("Alice,10001,CSE"))
	require.NoError(t, f.Truncate())

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestLocalStorage_AbsolutePathIsKept(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(t.TempDir(), "elsewhere.txt")
	assert.Equal(t, abs, ls.File(abs).Path())
}
