package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDLStatements(t *testing.T) {
	got := splitDDLStatements(`
-- header comment
CREATE TABLE a (
  id STRING(36) NOT NULL,
) PRIMARY KEY (id);

CREATE INDEX idx_a ON a(id);
`)
	require.Len(t, got, 2)
	assert.Equal(t, "CREATE TABLE a (\nid STRING(36) NOT NULL,\n) PRIMARY KEY (id)", got[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a(id)", got[1])
}

func TestInitMigrationCoversEveryTable(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	created := map[string]bool{}
	for _, stmt := range splitDDLStatements(string(content)) {
		if rest, ok := strings.CutPrefix(stmt, "CREATE TABLE "); ok {
			created[strings.Fields(rest)[0]] = true
		}
	}
	for _, table := range []string{"products", "raffles", "plans", "ads", "transactions"} {
		assert.True(t, created[table], table)
	}
}

func TestParseTarget(t *testing.T) {
	tg, err := parseTarget("projects/p1/instances/i1/databases/d1")
	require.NoError(t, err)
	assert.Equal(t, "projects/p1/instances/i1", tg.instancePath())
	assert.Equal(t, "projects/p1/instances/i1/databases/d1", tg.databasePath())

	for _, bad := range []string{"", "projects/p1", "projects/p1/instances/i1/tables/d1"} {
		_, err := parseTarget(bad)
		assert.Error(t, err, bad)
	}
}
