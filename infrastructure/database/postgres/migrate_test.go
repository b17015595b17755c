package postgres

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()

	data, err := fs.ReadFile(migrationsFS, "migrations/"+name)
	require.NoError(t, err)

	return string(data)
}

func TestMigrations_MetricasRemovidasEmCascata(t *testing.T) {
	up := readMigration(t, "000001_init.up.sql")

	for _, column := range []string{"category_id", "source_id", "week_id"} {
		t.Run(column, func(t *testing.T) {
			pattern := regexp.MustCompile(column + `\s+INTEGER\s+NOT NULL\s+REFERENCES\s+\w+\s*\(id\)\s+ON DELETE CASCADE`)
			assert.Regexp(t, pattern, up)
		})
	}
}

func TestMigrations_ConstraintsUnicas(t *testing.T) {
	up := readMigration(t, "000001_init.up.sql")

	assert.Contains(t, up, "CONSTRAINT categories_name_key UNIQUE (name)")
	assert.Contains(t, up, "CONSTRAINT sources_name_key UNIQUE (name)")
	assert.Contains(t, up, "CONSTRAINT lead_metrics_category_source_week_key UNIQUE (category_id, source_id, week_id)")
}

func TestMigrations_DownRemoveTabelas(t *testing.T) {
	down := strings.ToLower(readMigration(t, "000001_init.down.sql"))

	for _, table := range []string{"lead_metrics", "weeks", "sources", "categories"} {
		assert.Contains(t, down, "drop table if exists "+table)
	}
}
