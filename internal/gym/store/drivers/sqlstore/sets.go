package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

const setColumns = `id, exercise_set_id, user_id, reps, reps_unit, weight, weight_unit, rest, rest_unit, created_at`

type setsRepo struct{ conn }

func scanSet(row rowScanner) (domain.Set, error) {
	var s domain.Set
	err := row.Scan(&s.ID, &s.ExerciseSetID, &s.UserID,
		&s.Reps, &s.RepsUnit, &s.Weight, &s.WeightUnit, &s.Rest, &s.RestUnit,
		&s.CreatedAt)
	return s, err
}

func (r setsRepo) List(ctx context.Context, scope store.Scope, f store.SetFilter) ([]domain.Set, error) {
	rows, err := r.query(ctx,
		`SELECT `+setColumns+` FROM sets
		  WHERE `+ownerClause+`
		    AND (? = '' OR weight_unit = ?)
		    AND (? = '' OR exercise_set_id = ?)
		  ORDER BY id`,
		scope.OwnerID, scope.OwnerID,
		string(f.WeightUnit), string(f.WeightUnit),
		f.ExerciseSetID, f.ExerciseSetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r setsRepo) Get(ctx context.Context, scope store.Scope, id string) (domain.Set, error) {
	s, err := scanSet(r.queryRow(ctx,
		`SELECT `+setColumns+` FROM sets WHERE id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	))
	return s, mapNotFound(err)
}

func (r setsRepo) Create(ctx context.Context, s domain.Set) error {
	_, err := r.exec(ctx,
		`INSERT INTO sets (`+setColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ExerciseSetID, s.UserID,
		s.Reps, string(s.RepsUnit), s.Weight.StringFixed(domain.WeightPlaces), string(s.WeightUnit),
		s.Rest, string(s.RestUnit), s.CreatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r setsRepo) Update(ctx context.Context, scope store.Scope, s domain.Set) error {
	return r.execOne(ctx,
		`UPDATE sets SET reps = ?, reps_unit = ?, weight = ?, weight_unit = ?, rest = ?, rest_unit = ?
		  WHERE id = ? AND `+ownerClause,
		append([]any{
			s.Reps, string(s.RepsUnit), s.Weight.StringFixed(domain.WeightPlaces), string(s.WeightUnit),
			s.Rest, string(s.RestUnit), s.ID,
		}, ownerArgs(scope)...)...,
	)
}

func (r setsRepo) Delete(ctx context.Context, scope store.Scope, id string) error {
	return r.execOne(ctx,
		`DELETE FROM sets WHERE id = ? AND `+ownerClause,
		append([]any{id}, ownerArgs(scope)...)...,
	)
}
