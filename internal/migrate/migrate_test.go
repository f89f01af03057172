package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestInitMigrationDeclaresUniqueKeys(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "sql/000001_init.up.sql")
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "identifier    TEXT        NOT NULL UNIQUE")
	assert.Contains(t, sql, "phone      TEXT        NOT NULL UNIQUE")
}

// Client-supplied strings have no length limit, so no column may cap them.
func TestMigrationsDoNotCapStringLengths(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)

	for _, e := range entries {
		data, err := fs.ReadFile(migrationsFS, "sql/"+e.Name())
		require.NoError(t, err)
		assert.NotContains(t, strings.ToUpper(string(data)), "VARCHAR", e.Name())
	}
}

func TestCatalogPayloadKeepsSubmittedText(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "sql/000002_catalog.up.sql")
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "payload    JSON        NOT NULL")
	assert.NotContains(t, strings.ToUpper(sql), "JSONB")
}
