package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
)

type muscleGroupsRepo struct{ conn }

func (r muscleGroupsRepo) List(ctx context.Context) ([]domain.MuscleGroup, error) {
	rows, err := r.query(ctx, `SELECT id, name, description, created_at FROM muscle_groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MuscleGroup
	for rows.Next() {
		var m domain.MuscleGroup
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r muscleGroupsRepo) Get(ctx context.Context, id string) (domain.MuscleGroup, error) {
	var m domain.MuscleGroup
	err := r.queryRow(ctx,
		`SELECT id, name, description, created_at FROM muscle_groups WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt)
	return m, mapNotFound(err)
}

func (r muscleGroupsRepo) Create(ctx context.Context, m domain.MuscleGroup) error {
	_, err := r.exec(ctx,
		`INSERT INTO muscle_groups (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.Name, m.Description, m.CreatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r muscleGroupsRepo) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM muscle_groups WHERE id = ?`, id)
}

type exercisesRepo struct{ conn }

func (r exercisesRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.query(ctx, `SELECT id, name, description, created_at FROM exercises ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Exercise
	index := make(map[string]int)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	links, err := r.links(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		if i, ok := index[l.exerciseID]; ok {
			out[i].MuscleGroupIDs = append(out[i].MuscleGroupIDs, l.muscleGroupID)
		}
	}
	return out, nil
}

func (r exercisesRepo) Get(ctx context.Context, id string) (domain.Exercise, error) {
	var e domain.Exercise
	err := r.queryRow(ctx,
		`SELECT id, name, description, created_at FROM exercises WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt)
	if err != nil {
		return e, mapNotFound(err)
	}

	links, err := r.links(ctx, id)
	if err != nil {
		return e, err
	}
	for _, l := range links {
		e.MuscleGroupIDs = append(e.MuscleGroupIDs, l.muscleGroupID)
	}
	return e, nil
}

func (r exercisesRepo) Create(ctx context.Context, e domain.Exercise) error {
	_, err := r.exec(ctx,
		`INSERT INTO exercises (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Name, e.Description, e.CreatedAt.UTC(),
	)
	if err != nil {
		return r.d.mapWriteErr(err)
	}
	for _, mg := range e.MuscleGroupIDs {
		if _, err := r.exec(ctx,
			`INSERT INTO exercise_muscle_groups (exercise_id, muscle_group_id) VALUES (?, ?)`,
			e.ID, mg,
		); err != nil {
			return r.d.mapWriteErr(err)
		}
	}
	return nil
}

func (r exercisesRepo) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM exercises WHERE id = ?`, id)
}

type exerciseLink struct {
	exerciseID    string
	muscleGroupID string
}

// links loads exercise to muscle group rows, for one exercise or all of them.
func (r exercisesRepo) links(ctx context.Context, exerciseID string) ([]exerciseLink, error) {
	rows, err := r.query(ctx,
		`SELECT exercise_id, muscle_group_id FROM exercise_muscle_groups
		  WHERE (? = '' OR exercise_id = ?)
		  ORDER BY exercise_id, muscle_group_id`,
		exerciseID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []exerciseLink
	for rows.Next() {
		var l exerciseLink
		if err := rows.Scan(&l.exerciseID, &l.muscleGroupID); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
