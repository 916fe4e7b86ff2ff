package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bailanysta/api/internal/feed/store"
	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repositories can run
// inside or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection; keep the pool at one so
	// every query and the migrations see the same database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tx := &Tx{tx: sqlTx}

	// Rollback after commit is a harmless no-op; this covers panics and
	// early error returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return &usersRepo{q: s.db} }
func (s *Store) Follows() store.Follows             { return &followsRepo{q: s.db} }
func (s *Store) Posts() store.Posts                 { return &postsRepo{q: s.db} }
func (s *Store) Notifications() store.Notifications { return &notificationsRepo{q: s.db} }

// Tx is the transaction-scoped store.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Users() store.Users                 { return &usersRepo{q: t.tx} }
func (t *Tx) Follows() store.Follows             { return &followsRepo{q: t.tx} }
func (t *Tx) Posts() store.Posts                 { return &postsRepo{q: t.tx} }
func (t *Tx) Notifications() store.Notifications { return &notificationsRepo{q: t.tx} }

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates sqlite unique-constraint violations into the
// store's sentinel. modernc/sqlite surfaces these as plain errors whose
// message carries the constraint name.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// requireRow maps an update/delete that touched nothing to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// placeholders returns "?,?,..." with n entries for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
