package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"todoapp/config"
	"todoapp/infras/database"
	"todoapp/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var errUnknownAction = errors.New("unknown migration action")

func databaseURL(cfg *config.Config) (string, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		write := cfg.DB.Postgres.Write
		dsn := database.PostgresDSN(write.Username, write.Password, write.Host, write.Port,
			database.PostgresDBName(*cfg, write.Name), write.SSLMode)

		return fmt.Sprintf("%s&x-migrations-table=%s", dsn, cfg.DB.MigrationTable), nil
	case config.DriverSQLite:
		return fmt.Sprintf("sqlite://%s?x-migrations-table=%s", cfg.DB.SQLite.Path, cfg.DB.MigrationTable), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, cfg.DB.Driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	url, err := databaseURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Str("driver", cfg.DB.Driver).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
