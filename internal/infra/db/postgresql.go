// Package db manages the PostgreSQL connection that backs the ledger,
// option catalogs and user accounts.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookmate/backend/config"
)

const (
	// pingTimeout bounds each liveness probe, both at startup and on the
	// health endpoint.
	pingTimeout = 2 * time.Second

	// connectAttempts covers containerized startup where the API can come
	// up before PostgreSQL is ready to accept connections.
	connectAttempts   = 3
	connectRetryDelay = 2 * time.Second
)

// Postgres owns the GORM handle and its underlying connection pool.
type Postgres struct {
	gorm *gorm.DB
}

// Connect opens the PostgreSQL pool described by cfg and verifies it is
// reachable before returning.
func Connect(cfg config.DatabaseConfig) (*Postgres, error) {
	if cfg.URL == "" {
		return nil, errors.New("database: DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	pool, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool handle: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = pool.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			return nil, fmt.Errorf("database: unreachable after %d attempts: %w", attempt, err)
		}
		slog.Warn("Database not ready, retrying",
			"attempt", attempt,
			"error", err,
		)
		time.Sleep(connectRetryDelay)
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return &Postgres{gorm: gdb}, nil
}

// Gorm returns the GORM handle for repositories.
func (p *Postgres) Gorm() *gorm.DB {
	return p.gorm
}

// Healthy reports whether the database currently answers a ping. It is
// wired into the health endpoint.
func (p *Postgres) Healthy() bool {
	pool, err := p.gorm.DB()
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := pool.PingContext(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

// Migrate applies GORM auto-migration for the given models.
func (p *Postgres) Migrate(models ...interface{}) error {
	if err := p.gorm.AutoMigrate(models...); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}

// Close drains the connection pool.
func (p *Postgres) Close() error {
	pool, err := p.gorm.DB()
	if err != nil {
		return fmt.Errorf("database: pool handle: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("database: close: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
