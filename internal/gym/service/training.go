package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

const msgBadDate = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."

func msgMissingObject(id string) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", id)
}

// notFound maps a store miss to ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// attachSets groups sets under their exercise sets, preserving order.
func attachSets(ess []domain.ExerciseSet, sets []domain.Set) {
	index := make(map[string]int, len(ess))
	for i := range ess {
		index[ess[i].ID] = i
		ess[i].Sets = []domain.Set{}
	}
	for _, s := range sets {
		if i, ok := index[s.ExerciseSetID]; ok {
			ess[i].Sets = append(ess[i].Sets, s)
		}
	}
}

// attachExerciseSets groups exercise sets under their workouts.
func attachExerciseSets(ws []domain.Workout, ess []domain.ExerciseSet) {
	index := make(map[string]int, len(ws))
	for i := range ws {
		index[ws[i].ID] = i
		ws[i].ExerciseSets = []domain.ExerciseSet{}
	}
	for _, es := range ess {
		if i, ok := index[es.WorkoutID]; ok {
			ws[i].ExerciseSets = append(ws[i].ExerciseSets, es)
		}
	}
}

// loadTree reads every exercise set and set visible in scope.
func loadTree(ctx context.Context, st store.Store, scope store.Scope) ([]domain.ExerciseSet, error) {
	ess, err := st.ExerciseSets().List(ctx, scope)
	if err != nil {
		return nil, err
	}
	sets, err := st.Sets().List(ctx, scope, store.SetFilter{})
	if err != nil {
		return nil, err
	}
	attachSets(ess, sets)
	return ess, nil
}

// loadExerciseSet reads one exercise set with its sets.
func loadExerciseSet(ctx context.Context, st store.Store, scope store.Scope, id string) (domain.ExerciseSet, error) {
	es, err := st.ExerciseSets().Get(ctx, scope, id)
	if err != nil {
		return es, notFound(err)
	}
	sets, err := st.Sets().List(ctx, store.Scope{}, store.SetFilter{ExerciseSetID: id})
	if err != nil {
		return es, err
	}
	es.Sets = append([]domain.Set{}, sets...)
	return es, nil
}
