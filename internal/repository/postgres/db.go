package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// PoolOptions controls connection retries and pool sizing
type PoolOptions struct {
	Attempts        uint64
	RetryDelay      time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions waits up to a minute for the database to come up
var DefaultPoolOptions = PoolOptions{
	Attempts:        30,
	RetryDelay:      2 * time.Second,
	MaxOpenConns:    25,
	MaxIdleConns:    5,
	ConnMaxLifetime: 5 * time.Minute,
}

// Connect opens a pool for driverName and pings it, retrying at a fixed delay
// until the database answers, attempts run out, or ctx is done.
func Connect(ctx context.Context, driverName, dsn string, opts PoolOptions, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	attempt := 0

	connect := func() error {
		attempt++
		conn, err := sql.Open(driverName, dsn)
		if err != nil {
			return err
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return err
		}
		db = conn
		return nil
	}

	var retries uint64
	if opts.Attempts > 1 {
		retries = opts.Attempts - 1
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(opts.RetryDelay), retries),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		logger.Warn("Database not ready",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	return db, nil
}
