package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}

	assert.Equal(t, ups, downs)
	assert.Contains(t, ups, "000001_create_users_table")
	assert.Contains(t, ups, "000002_create_posts_table")
}

func TestPostsReferenceUsersWithRestrict(t *testing.T) {
	content, err := fs.ReadFile(files, "sql/000002_create_posts_table.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "REFERENCES users (id) ON DELETE RESTRICT")
}
