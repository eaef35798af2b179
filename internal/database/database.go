// Package database establishes connections to PostgreSQL.
//
// It handles:
//   - building a DSN from config, either from an explicit URL and
//     credentials or from host, port and database name
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing: SQL logging in local runs, a slow query log,
//     and optional New Relic instrumentation (nrpgx5)
//   - running the embedded tern migrations
package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/newsroom/internal/config"
	loggerConfig "github.com/deppfellow/newsroom/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the shared pgx pool.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout bounds the connectivity check made on startup.
const DatabasePingTimeout = 10 * time.Second

// New creates an instrumented connection pool from cfg and pings it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	dsn, err := DSN(cfg.Database)
	if err != nil {
		return nil, err
	}

	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}
	applyPoolSettings(pgxPoolConfig, cfg.Database)

	var tracers []pgx.QueryTracer

	if loggerService != nil && loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// Statement logging is noisy, so it is local only.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	if threshold := cfg.Observability.Logging.SlowQueryThreshold; threshold > 0 {
		tracers = append(tracers, &slowQueryTracer{threshold: threshold, log: logger})
	}

	switch len(tracers) {
	case 0:
	case 1:
		pgxPoolConfig.ConnConfig.Tracer = tracers[0]
	default:
		pgxPoolConfig.ConnConfig.Tracer = &multiTracer{tracers: tracers}
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout)
	defer cancel()

	return connect(ctx, pgxPoolConfig, logger)
}

func connect(ctx context.Context, pgxPoolConfig *pgxpool.Config, logger *zerolog.Logger) (*Database, error) {
	pool, err := pgxpool.NewWithConfig(ctx, pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", pgxPoolConfig.ConnConfig.Host).
		Str("database", pgxPoolConfig.ConnConfig.Database).
		Msg("connected to the database")

	return &Database{
		Pool: pool,
		log:  logger,
	}, nil
}

// DSN builds the connection string for cfg. A configured URL wins over
// host, port, name and ssl mode; credentials always come from cfg.
func DSN(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return withCredentials(cfg.URL, cfg.User, cfg.Password)
	}

	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   hostPort,
		Path:   "/" + cfg.Name,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}

	return dsn.String(), nil
}

// withCredentials accepts postgres:// URLs as well as the jdbc:postgresql://
// form used by JVM property files. A password without a configured user
// applies to the user named in the URL.
func withCredentials(rawURL, user, password string) (string, error) {
	u, err := url.Parse(strings.TrimPrefix(rawURL, "jdbc:"))
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	switch {
	case user != "" && password != "":
		u.User = url.UserPassword(user, password)
	case user != "":
		u.User = url.User(user)
	case password != "":
		if u.User == nil || u.User.Username() == "" {
			return "", errors.New("database password is set but no user is configured")
		}
		u.User = url.UserPassword(u.User.Username(), password)
	}

	return u.String(), nil
}

func applyPoolSettings(pc *pgxpool.Config, cfg config.DatabaseConfig) {
	if cfg.MaxOpenConns > 0 {
		pc.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		pc.MinConns = int32(min(cfg.MaxIdleConns, int(pc.MaxConns)))
	}
	if cfg.ConnMaxLifetime > 0 {
		pc.MaxConnLifetime = time.Duration(cfg.ConnMaxLifetime) * time.Second
	}
	if cfg.ConnMaxIdleTime > 0 {
		pc.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleTime) * time.Second
	}
}

// Close closes the pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
