// Package store owns the relational side of the pipeline: schema
// creation, the transactional load, total reconciliation, and the
// post-commit integrity audit.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db     *sqlx.DB
	driver string
	qb     squirrel.StatementBuilderType
}

// Open connects to the target store. The provider selects the driver
// the way the rest of the toolkit does: sqlite (the default, embedded)
// or postgresql.
func Open(provider, dsn string) (*Store, error) {
	var driver string
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	switch provider {
	case "", "sqlite", "sqlite3":
		driver = "sqlite3"
		if !strings.Contains(dsn, "?") {
			dsn += "?_foreign_keys=on"
		}
	case "postgres", "postgresql":
		driver = "pgx"
		qb = qb.PlaceholderFormat(squirrel.Dollar)
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// one connection keeps the FK pragma and the load transaction
		// on the same handle, and keeps :memory: stores alive
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return &Store{db: db, driver: driver, qb: qb}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for read-only consumers (audit,
// query runner).
func (s *Store) DB() *sqlx.DB {
	return s.db
}
