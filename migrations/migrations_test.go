package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMigrationFilesEmbedded(t *testing.T) {
	migrations, err := readMigrationFiles(migrationFiles, "sql")
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_color_scheme", migrations[0].Name)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS color_scheme")
	assert.Equal(t, 2, migrations[1].Version)
}

func TestReadMigrationFilesSortsAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_later.sql":   {Data: []byte("SELECT 10")},
		"m/002_earlier.sql": {Data: []byte("SELECT 2")},
		"m/notes.txt":       {Data: []byte("ignored")},
		"m/bad_name.sql":    {Data: []byte("ignored")},
	}

	migrations, err := readMigrationFiles(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "earlier", migrations[0].Name)
	assert.Equal(t, "later", migrations[1].Name)
}

func TestReadMigrationFilesMissingDir(t *testing.T) {
	_, err := readMigrationFiles(fstest.MapFS{}, "missing")
	assert.Error(t, err)
}
