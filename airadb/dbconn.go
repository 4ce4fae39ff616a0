package airadb

//go:generate go tool github.com/hexdigest/gowrap/cmd/gowrap gen -t opentelemetry -g -i QuerierTx -p . -o otel.go

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-sql-driver/mysql"

	"go.ntppool.org/common/logger"

	"go.aira.dev/staffing/config"
)

// mysql error numbers that retrying won't fix
const (
	errAccessDenied    = 1045
	errUnknownDatabase = 1049
)

// Options tune the connection pool and the startup ping loop.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// DefaultOptions are used for zero fields in Options.
var DefaultOptions = Options{
	MaxOpenConns:    10,
	MaxIdleConns:    5,
	ConnMaxLifetime: 3 * time.Minute,
	ConnectTimeout:  30 * time.Second,
}

// ErrNoDSN is returned when no database is configured
var ErrNoDSN = errors.New("database dsn not configured")

// OpenConfig opens the database described by the database section of
// the configuration.
func OpenConfig(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%w (set database.dsn or AIRA_DATABASE__DSN)", ErrNoDSN)
	}
	return OpenDB(ctx, cfg.DSN, Options{
		MaxOpenConns:   cfg.MaxOpenConns,
		ConnectTimeout: cfg.ConnectTimeout,
	})
}

// OpenDB opens a MySQL connection pool for dsn and waits (with exponential
// backoff) until the server answers a ping or opts.ConnectTimeout passes.
func OpenDB(ctx context.Context, dsn string, opts Options) (*sql.DB, error) {
	log := logger.FromContext(ctx)

	opts = opts.withDefaults()

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}
	// program dates are DATETIME columns
	cfg.ParseTime = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create connector: %w", err)
	}

	dbconn := sql.OpenDB(connector)
	dbconn.SetMaxOpenConns(opts.MaxOpenConns)
	dbconn.SetMaxIdleConns(opts.MaxIdleConns)
	dbconn.SetConnMaxLifetime(opts.ConnMaxLifetime)

	expback := backoff.NewExponentialBackOff()
	expback.InitialInterval = time.Millisecond * 250
	expback.MaxInterval = time.Second * 5

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		err := dbconn.PingContext(ctx)
		if err != nil && isPermanent(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(expback),
		backoff.WithMaxElapsedTime(opts.ConnectTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WarnContext(ctx, "database not ready", "addr", cfg.Addr, "retryIn", next, "err", err)
		}),
	)
	if err != nil {
		dbconn.Close()
		return nil, fmt.Errorf("could not connect to database %q: %w", cfg.Addr, err)
	}

	log.DebugContext(ctx, "database connected", "addr", cfg.Addr, "db", cfg.DBName)

	return dbconn, nil
}

func (o Options) withDefaults() Options {
	if o.MaxOpenConns <= 0 {
		o.MaxOpenConns = DefaultOptions.MaxOpenConns
	}
	if o.MaxIdleConns <= 0 {
		o.MaxIdleConns = DefaultOptions.MaxIdleConns
	}
	if o.ConnMaxLifetime <= 0 {
		o.ConnMaxLifetime = DefaultOptions.ConnMaxLifetime
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultOptions.ConnectTimeout
	}
	return o
}

func isPermanent(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case errAccessDenied, errUnknownDatabase:
			return true
		}
	}
	return false
}
