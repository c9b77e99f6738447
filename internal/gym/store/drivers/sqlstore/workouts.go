package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

// ownerClause matches rows of the scope owner, or every row for an
// unrestricted scope. It consumes two arguments, see ownerArgs.
const ownerClause = `(? = '' OR user_id = ?)`

func ownerArgs(s store.Scope) []any { return []any{s.OwnerID, s.OwnerID} }

type workoutsRepo struct{ conn }

func scanWorkout(row rowScanner) (domain.Workout, error) {
	var (
		w    domain.Workout
		date string
	)
	if err := row.Scan(&w.ID, &w.UserID, &date, &w.CreatedAt); err != nil {
		return w, err
	}
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return w, fmt.Errorf("workout %s: bad date %q: %w", w.ID, date, err)
	}
	w.Date = d
	return w, nil
}

func (r workoutsRepo) List(ctx context.Context, scope store.Scope) ([]domain.Workout, error) {
	rows, err := r.query(ctx,
		`SELECT id, user_id, date, created_at FROM workouts
		  WHERE `+ownerClause+`
		  ORDER BY date DESC, id DESC`,
		ownerArgs(scope)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r workoutsRepo) Get(ctx context.Context, scope store.Scope, id string) (domain.Workout, error) {
	w, err := scanWorkout(r.queryRow(ctx,
		`SELECT id, user_id, date, created_at FROM workouts WHERE id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	))
	return w, mapNotFound(err)
}

func (r workoutsRepo) Create(ctx context.Context, w domain.Workout) error {
	_, err := r.exec(ctx,
		`INSERT INTO workouts (id, user_id, date, created_at) VALUES (?, ?, ?, ?)`,
		w.ID, w.UserID, w.Date.Format(domain.DateLayout), w.CreatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r workoutsRepo) UpdateDate(ctx context.Context, scope store.Scope, w domain.Workout) error {
	return r.execOne(ctx,
		`UPDATE workouts SET date = ? WHERE id = ? AND `+ownerClause,
		append([]any{w.Date.Format(domain.DateLayout), w.ID}, ownerArgs(scope)...)...,
	)
}

func (r workoutsRepo) Delete(ctx context.Context, scope store.Scope, id string) error {
	return r.execOne(ctx,
		`DELETE FROM workouts WHERE id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	)
}
