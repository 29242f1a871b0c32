// Package shared holds the state passed to all fyyurctl commands.
package shared

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/fyyur/internal/config"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// DatabaseURL overrides DATABASE_URL from the environment or .env.
	DatabaseURL string
}

// DSN resolves the connection string: the flag wins, then the environment.
func (c *Context) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	return config.DatabaseURL()
}

// OpenSQL opens a *sql.DB through the pgx driver for goose.
func (c *Context) OpenSQL(ctx context.Context) (*sql.DB, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// OpenPool opens a pgx pool for commands that go through the repos.
func (c *Context) OpenPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}
