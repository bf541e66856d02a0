package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_init.sql"))
	assert.Equal(t, "002", Version("sql/002_attendance.sql"))
}

func TestFiles_SortsAndFiltersSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"m/002_b.sql":   {Data: []byte("SELECT 2;")},
		"m/001_a.sql":   {Data: []byte("SELECT 1;")},
		"m/README.md":   {Data: []byte("notes")},
		"m/sub/003.sql": {Data: []byte("SELECT 3;")},
	}

	files, err := Files(fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, files)
}

func TestFiles_Embedded(t *testing.T) {
	files, err := Files(embedded, "sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_attendance.sql"}, files)
}
