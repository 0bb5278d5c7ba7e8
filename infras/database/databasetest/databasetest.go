// Package databasetest opens migrated SQLite databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"
	"todoapp/config"
	"todoapp/helper"
	"todoapp/infras/database"

	"github.com/stretchr/testify/require"
)

// Config returns a configuration pointing at a fresh SQLite file inside the test's temp dir.
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "todoapp-test"
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MaxRetry = 1
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "todo.db")

	return cfg
}

// New migrates a fresh SQLite database and returns a connection to it, closed on cleanup.
func New(t *testing.T) (*config.Config, *database.Connection) {
	t.Helper()

	cfg := Config(t)
	require.NoError(t, helper.Up(cfg))

	conn := database.New(cfg)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return cfg, conn
}
