package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"infinite-experiment/airport-lookup/internal/config"
	"infinite-experiment/airport-lookup/internal/logging"
)

const connectRetryDelay = 500 * time.Millisecond

// Connect opens the shared Postgres pool and pings it. The attempt is
// retried cfg.ConnectRetries times so the service can start alongside the
// database container.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		conn, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
		if err == nil {
			configurePool(conn, cfg)
			return conn, nil
		}

		logging.Warn("Postgres not reachable yet",
			"attempt", attempt,
			"host", cfg.Host,
			"error", err.Error(),
		)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt == cfg.ConnectRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}

	return nil, fmt.Errorf("connect to postgres after %d attempts: %w", cfg.ConnectRetries, err)
}

func configurePool(conn *sqlx.DB, cfg config.DatabaseConfig) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}
