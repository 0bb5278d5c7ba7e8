package database

import (
	"fmt"
	"time"
	"todoapp/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnection = 10
	maxOpenConnection = 10
)

// Connection holds the read and write handles. With SQLite both point at the same pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db := CreateSQLiteConnection(cfg.DB.SQLite.Path, cfg.DB.MaxRetry, cfg.DB.RetryWaitTime)

		return &Connection{Read: db, Write: db}
	case config.DriverPostgres:
		return &Connection{
			Read:  CreatePostgresReadConn(*cfg),
			Write: CreatePostgresWriteConn(*cfg),
		}
	default:
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("Unsupported database driver")

		return nil
	}
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	return nil
}

// connect opens a pool, retrying maxRetry times with waitTime seconds in between.
func connect(name, driver, descriptor string, maxRetry, waitTime int, fields map[string]any) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect(driver, descriptor)
		if err == nil {
			log.Info().Str("name", name).Str("driver", driver).Fields(fields).Msg("Connected to database")

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("driver", driver).
			Fields(fields).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Str("driver", driver).Msg("Giving up connecting to database")

	return nil
}
