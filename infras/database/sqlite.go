package database

//nolint:revive
import (
	"todoapp/config"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteDSN enables foreign keys and a busy timeout so concurrent writers wait instead of failing.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

// CreateSQLiteConnection opens a single-writer pool on the database file at path.
func CreateSQLiteConnection(path string, maxRetry, waitTime int) *sqlx.DB {
	sqlDB := connect("sqlite", config.DriverSQLite, SQLiteDSN(path), maxRetry, waitTime, map[string]any{"path": path})
	sqlDB.SetMaxOpenConns(1)

	return sqlDB
}
