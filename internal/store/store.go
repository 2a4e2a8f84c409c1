package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the host platform's database. It only inserts fixture rows
// and reads pre-existing reference data; it never creates or alters schema.
type Store struct {
	DB       *sql.DB
	provider string
	builder  sq.StatementBuilderType
}

func Open(provider, url string) (*Store, error) {
	db, err := sql.Open(driverName(provider), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(db, provider), nil
}

// New wraps an already-open connection. Used by Open and by tests.
func New(db *sql.DB, provider string) *Store {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if isPostgres(provider) {
		builder = builder.PlaceholderFormat(sq.Dollar)
	}

	return &Store{
		DB:       db,
		provider: provider,
		builder:  builder,
	}
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func driverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "pgx"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return "pgx"
	}
}

func isPostgres(provider string) bool {
	return provider == "postgresql" || provider == "postgres"
}

// Insert writes a single row and returns its assigned id.
func (s *Store) Insert(ctx context.Context, table string, values map[string]any) (int64, error) {
	q := s.builder.Insert(table).SetMap(values)

	if isPostgres(s.provider) {
		var id int64
		query, args, err := q.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return id, nil
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id for %s: %w", table, err)
	}
	return id, nil
}

// Update overwrites the given columns of one row by id.
func (s *Store) Update(ctx context.Context, table string, id int64, values map[string]any) error {
	query, args, err := s.builder.Update(table).SetMap(values).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update for %s: %w", table, err)
	}
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s id=%d: %w", table, id, err)
	}
	return nil
}
