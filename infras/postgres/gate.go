package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"todolist/migrations"
)

var errDatabaseTimeout = errors.New("timed out waiting for database")

// WaitForDatabase pings the database up to MaxRetry times, sleeping
// RetryWaitTime seconds between attempts. Each ping is bounded by
// ConnectTimeout.
func (c *Connection) WaitForDatabase(ctx context.Context) error {
	retries := c.config.DB.MaxRetry
	delay := time.Duration(c.config.DB.RetryWaitTime) * time.Second
	timeout := time.Duration(c.config.DB.ConnectTimeout) * time.Second

	for attempt := 1; attempt <= retries; attempt++ {
		err := c.ping(ctx, timeout)
		if err == nil {
			log.Info().
				Str("host", c.config.DB.Host).
				Str("dbName", c.config.DB.Name).
				Int("attempt", attempt).
				Msg("Database available")

			return nil
		}

		log.Warn().
			Err(err).
			Str("host", c.config.DB.Host).
			Int("attempt", attempt).
			Int("retries", retries).
			Msg("Waiting for database")

		if attempt == retries {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return errDatabaseTimeout
}

func (c *Connection) ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}

// EnsureSchema creates the tasks table when it does not exist yet.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	ddl, err := migrations.TasksSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	err = c.Acquire(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating tasks table: %w", Classify(err))
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Msg("Table 'tasks' created or verified")

	return nil
}

// Initialize blocks until the database answers and then ensures the schema.
// Neither step stops the process on failure: an unreachable database is
// logged and the server starts without a schema guarantee. Test mode skips
// both steps.
func (c *Connection) Initialize(ctx context.Context) {
	if c.config.IsTesting() {
		log.Info().Msg("Test mode: skipping database wait and schema initialization")

		return
	}

	if err := c.WaitForDatabase(ctx); err != nil {
		log.Error().Err(err).Msg("Continuing without initializing the database")

		return
	}

	if err := c.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to initialize the database schema")
	}
}
