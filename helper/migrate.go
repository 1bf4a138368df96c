package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/infras/postgres"
	"todolist/migrations"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// migrationURL is the pool DSN plus the golang-migrate bookkeeping table.
func migrationURL(config *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.DSN(config))
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}

	query := dsn.Query()
	query.Set("x-migrations-table", config.DB.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	databaseURL, err := migrationURL(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	var run func(mig *migrate.Migrate) error

	switch action {
	case ActionUp:
		run = (*migrate.Migrate).Up
	case ActionDown:
		run = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case ActionDrop:
		run = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
