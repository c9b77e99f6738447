package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

const exerciseSetSelect = `SELECT es.id, es.workout_id, es.exercise_id, e.name, es.user_id, es.created_at
  FROM exercise_sets es
  JOIN exercises e ON e.id = es.exercise_id`

type exerciseSetsRepo struct{ conn }

func scanExerciseSet(row rowScanner) (domain.ExerciseSet, error) {
	var es domain.ExerciseSet
	err := row.Scan(&es.ID, &es.WorkoutID, &es.ExerciseID, &es.ExerciseName, &es.UserID, &es.CreatedAt)
	return es, err
}

func (r exerciseSetsRepo) list(ctx context.Context, where string, args ...any) ([]domain.ExerciseSet, error) {
	rows, err := r.query(ctx, exerciseSetSelect+` WHERE `+where+` ORDER BY es.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExerciseSet
	for rows.Next() {
		es, err := scanExerciseSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	return out, rows.Err()
}

func (r exerciseSetsRepo) List(ctx context.Context, scope store.Scope) ([]domain.ExerciseSet, error) {
	return r.list(ctx, ownerClause, ownerArgs(scope)...)
}

func (r exerciseSetsRepo) ListByWorkout(ctx context.Context, workoutID string) ([]domain.ExerciseSet, error) {
	return r.list(ctx, `es.workout_id = ?`, workoutID)
}

func (r exerciseSetsRepo) Get(ctx context.Context, scope store.Scope, id string) (domain.ExerciseSet, error) {
	es, err := scanExerciseSet(r.queryRow(ctx,
		exerciseSetSelect+` WHERE es.id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	))
	return es, mapNotFound(err)
}

func (r exerciseSetsRepo) Create(ctx context.Context, es domain.ExerciseSet) error {
	_, err := r.exec(ctx,
		`INSERT INTO exercise_sets (id, workout_id, exercise_id, user_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		es.ID, es.WorkoutID, es.ExerciseID, es.UserID, es.CreatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r exerciseSetsRepo) UpdateExercise(ctx context.Context, scope store.Scope, id, exerciseID string) error {
	return r.execOne(ctx,
		`UPDATE exercise_sets SET exercise_id = ? WHERE id = ? AND `+ownerClause,
		append([]any{exerciseID, id}, ownerArgs(scope)...)...,
	)
}

func (r exerciseSetsRepo) Delete(ctx context.Context, scope store.Scope, id string) error {
	return r.execOne(ctx,
		`DELETE FROM exercise_sets WHERE id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	)
}
