package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/shared/failure"
)

const (
	driverName = "postgres"
)

// ConnFunc runs against a connection checked out of the pool.
type ConnFunc func(ctx context.Context, conn *sqlx.Conn) error

// TxFunc runs inside a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Connection struct {
	DB     *sqlx.DB
	config *config.Config
}

// New opens the pool without dialing, so an unreachable database does not
// prevent startup. The returned cleanup closes the pool.
func New(cfg *config.Config) (*Connection, func(), error) {
	db, err := sqlx.Open(driverName, DSN(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database pool: %w", err)
	}

	conn := NewWithDB(db, cfg)

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database pool")
		}
	}

	return conn, cleanup, nil
}

// NewWithDB wraps an existing pool and applies the configured limits.
func NewWithDB(db *sqlx.DB, cfg *config.Config) *Connection {
	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetimeSeconds) * time.Second)

	return &Connection{
		DB:     db,
		config: cfg,
	}
}

// DSN builds the connection URL from the database section of cfg.
func DSN(cfg *config.Config) string {
	query := url.Values{}
	query.Set("sslmode", cfg.DB.SSLMode)

	if cfg.DB.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(cfg.DB.ConnectTimeout))
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(cfg.DB.Username, cfg.DB.Password),
		Host:     net.JoinHostPort(cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Acquire checks out a single connection, runs fn and returns the
// connection to the pool whatever fn does. A connection that cannot be
// obtained is reported as failure.Unavailable.
func (c *Connection) Acquire(ctx context.Context, fn ConnFunc) error {
	if c == nil || c.DB == nil {
		return failure.ErrDatabaseUnavailable
	}

	conn, err := c.DB.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", Classify(err))
	}

	defer func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release database connection")
		}
	}()

	return fn(ctx, conn)
}

// Transact runs fn in a transaction on an acquired connection. The
// transaction commits when fn returns nil and rolls back otherwise.
func (c *Connection) Transact(ctx context.Context, fn TxFunc) error {
	return c.Acquire(ctx, func(ctx context.Context, conn *sqlx.Conn) (err error) {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", Classify(err))
		}

		defer func() {
			if err == nil {
				return
			}

			if rbErr := tx.Rollback(); rbErr != nil {
				log.Warn().Err(rbErr).Msg("Failed to roll back transaction")
			}
		}()

		if err = fn(ctx, tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", Classify(err))
		}

		return nil
	})
}

func (c *Connection) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}

	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("closing database pool: %w", err)
	}

	return nil
}
