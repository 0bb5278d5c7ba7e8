package database

//nolint:revive
import (
	"fmt"
	"net"
	"todoapp/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresDBName returns the database name with prefix if configured
func PostgresDBName(cfg config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func PostgresDSN(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(cfg config.Config) *sqlx.DB {
	write := cfg.DB.Postgres.Write

	return CreatePostgresConnection(
		"write",
		PostgresDSN(write.Username, write.Password, write.Host, write.Port, PostgresDBName(cfg, write.Name), write.SSLMode),
		cfg.DB.MaxRetry,
		cfg.DB.RetryWaitTime,
		map[string]any{"host": write.Host, "port": write.Port, "dbName": PostgresDBName(cfg, write.Name)},
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(cfg config.Config) *sqlx.DB {
	read := cfg.DB.Postgres.Read

	return CreatePostgresConnection(
		"read",
		PostgresDSN(read.Username, read.Password, read.Host, read.Port, PostgresDBName(cfg, read.Name), read.SSLMode),
		cfg.DB.MaxRetry,
		cfg.DB.RetryWaitTime,
		map[string]any{"host": read.Host, "port": read.Port, "dbName": PostgresDBName(cfg, read.Name)},
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int, fields map[string]any) *sqlx.DB {
	sqlDB := connect(name, config.DriverPostgres, descriptor, maxRetry, waitTime, fields)
	sqlDB.SetMaxIdleConns(maxIdleConnection)
	sqlDB.SetMaxOpenConns(maxOpenConnection)

	return sqlDB
}
