// Package db opens the per-service Postgres connections. Each service keeps
// its own database and passes its own DSN environment key.
package db

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// MustDSN returns the DSN stored under the given environment key.
func MustDSN(envKey string) string {
	dsn := os.Getenv(envKey)
	if dsn == "" {
		log.Fatalf("%s not set", envKey)
	}
	return dsn
}

// MustOpen returns an open and verified database/sql connection.
func MustOpen(envKey string) *sql.DB {
	dsn := MustDSN(envKey)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	if err := conn.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	return conn
}

// MustOpenPool returns an open and verified pgx connection pool.
func MustOpenPool(ctx context.Context, envKey string) *pgxpool.Pool {
	dsn := MustDSN(envKey)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("open pgx pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	return pool
}
