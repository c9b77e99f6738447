// Package sqlstore implements store.Store on database/sql. The sqlite and
// postgres drivers supply the connection, a Dialect and their migrator.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

// Dialect captures the differences between database engines.
type Dialect struct {
	Name string

	// NumberedPlaceholders rewrites ? placeholders to $1, $2, ...
	NumberedPlaceholders bool

	// IsUniqueViolation recognises the engine's unique constraint error.
	IsUniqueViolation func(error) bool
}

// Migrator applies pending schema migrations to db.
type Migrator func(db *sql.DB) error

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn binds a queryer to its dialect and is embedded by every repository.
type conn struct {
	q queryer
	d *Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.d.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.d.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.d.rebind(query), args...)
}

// execOne runs a statement expected to touch exactly one row.
func (c conn) execOne(ctx context.Context, query string, args ...any) error {
	res, err := c.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (d *Dialect) rebind(query string) string {
	if !d.NumberedPlaceholders {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d *Dialect) mapWriteErr(err error) error {
	if err != nil && d.IsUniqueViolation != nil && d.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

type Store struct {
	db      *sql.DB
	dialect *Dialect
	migrate Migrator
}

func New(db *sql.DB, d Dialect, m Migrator) *Store {
	return &Store{db: db, dialect: &d, migrate: m}
}

// DB exposes the underlying pool for driver level tooling.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) conn() conn { return conn{q: s.db, d: s.dialect} }

func (s *Store) Users() store.Users                 { return usersRepo{s.conn()} }
func (s *Store) SessionTokens() store.SessionTokens { return sessionTokensRepo{s.conn()} }
func (s *Store) MuscleGroups() store.MuscleGroups   { return muscleGroupsRepo{s.conn()} }
func (s *Store) Exercises() store.Exercises         { return exercisesRepo{s.conn()} }
func (s *Store) Workouts() store.Workouts           { return workoutsRepo{s.conn()} }
func (s *Store) ExerciseSets() store.ExerciseSets   { return exerciseSetsRepo{s.conn()} }
func (s *Store) Sets() store.Sets                   { return setsRepo{s.conn()} }

func (s *Store) ApplyMigrations() error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(s.db)
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, c: conn{q: tx, d: s.dialect}}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type txStore struct {
	tx *sql.Tx
	c  conn
}

func (t *txStore) Users() store.Users                 { return usersRepo{t.c} }
func (t *txStore) SessionTokens() store.SessionTokens { return sessionTokensRepo{t.c} }
func (t *txStore) MuscleGroups() store.MuscleGroups   { return muscleGroupsRepo{t.c} }
func (t *txStore) Exercises() store.Exercises         { return exercisesRepo{t.c} }
func (t *txStore) Workouts() store.Workouts           { return workoutsRepo{t.c} }
func (t *txStore) ExerciseSets() store.ExerciseSets   { return exerciseSetsRepo{t.c} }
func (t *txStore) Sets() store.Sets                   { return setsRepo{t.c} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// ApplyMigrations is a no-op; migrations run on the Store before serving.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Close() error                 { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error { return sql.ErrTxDone }
