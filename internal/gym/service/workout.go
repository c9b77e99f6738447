package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

type WorkoutService struct {
	Store store.Store
}

// WorkoutInput is the payload of workout writes. Date is required unless the
// update is partial. A nil ExerciseSets leaves the children untouched, while
// an empty non-nil slice removes them all.
type WorkoutInput struct {
	Date         *string
	ExerciseSets []ExerciseSetInput
	Partial      bool
}

func (s *WorkoutService) List(ctx context.Context, actor Actor) ([]domain.Workout, error) {
	scope := actor.scope()
	ws, err := s.Store.Workouts().List(ctx, scope)
	if err != nil {
		return nil, err
	}
	ess, err := loadTree(ctx, s.Store, scope)
	if err != nil {
		return nil, err
	}
	attachExerciseSets(ws, ess)
	return ws, nil
}

func (s *WorkoutService) Get(ctx context.Context, actor Actor, id string) (domain.Workout, error) {
	return s.get(ctx, s.Store, actor.scope(), id)
}

func (s *WorkoutService) get(ctx context.Context, st store.Store, scope store.Scope, id string) (domain.Workout, error) {
	w, err := st.Workouts().Get(ctx, scope, id)
	if err != nil {
		return w, notFound(err)
	}
	ess, err := st.ExerciseSets().ListByWorkout(ctx, id)
	if err != nil {
		return w, err
	}
	w.ExerciseSets = []domain.ExerciseSet{}
	for _, es := range ess {
		sets, err := st.Sets().List(ctx, store.Scope{}, store.SetFilter{ExerciseSetID: es.ID})
		if err != nil {
			return w, err
		}
		es.Sets = append([]domain.Set{}, sets...)
		w.ExerciseSets = append(w.ExerciseSets, es)
	}
	return w, nil
}

// validate parses the date and checks every referenced exercise exists.
func (s *WorkoutService) validate(ctx context.Context, in WorkoutInput) (time.Time, error) {
	ve := &ValidationError{}

	var date time.Time
	switch {
	case in.Date != nil:
		d, err := time.Parse(domain.DateLayout, *in.Date)
		if err != nil {
			ve.Add("date", msgBadDate)
		}
		date = d
	case !in.Partial:
		ve.Add("date", MsgRequired)
	}

	checked := make(map[string]bool)
	for _, item := range in.ExerciseSets {
		if item.ExerciseID == "" {
			ve.Add("exercisesets", "exercise: "+MsgRequired)
			continue
		}
		if checked[item.ExerciseID] {
			continue
		}
		checked[item.ExerciseID] = true
		if _, err := s.Store.Exercises().Get(ctx, item.ExerciseID); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return date, err
			}
			ve.Add("exercisesets", msgMissingObject(item.ExerciseID))
		}
	}
	return date, ve.Err()
}

// Create stores a workout for the actor along with any nested exercise sets.
func (s *WorkoutService) Create(ctx context.Context, actor Actor, in WorkoutInput) (domain.Workout, error) {
	in.Partial = false
	date, err := s.validate(ctx, in)
	if err != nil {
		return domain.Workout{}, err
	}

	now := time.Now().UTC()
	w := domain.Workout{
		ID:        idx.New().String(),
		UserID:    actor.UserID,
		Date:      date,
		CreatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workouts().Create(ctx, w); err != nil {
			return err
		}
		for _, item := range in.ExerciseSets {
			if err := createExerciseSet(ctx, tx, w, item.ExerciseID, now); err != nil {
				return err
			}
		}
		var err error
		w, err = s.get(ctx, tx, store.Scope{}, w.ID)
		return err
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create workout", slog.Any("error", err))
		return domain.Workout{}, err
	}
	return w, nil
}

// Update changes the date and, when ExerciseSets is present, reconciles the
// workout's exercise sets with it in a single transaction.
func (s *WorkoutService) Update(ctx context.Context, actor Actor, id string, in WorkoutInput) (domain.Workout, error) {
	log := slogx.FromContext(ctx)
	scope := actor.scope()

	date, err := s.validate(ctx, in)
	if err != nil {
		return domain.Workout{}, err
	}

	var w domain.Workout
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Visibility.
		current, err := tx.Workouts().Get(ctx, scope, id)
		if err != nil {
			return notFound(err)
		}

		// 2. Own fields.
		if in.Date != nil {
			current.Date = date
			if err := tx.Workouts().UpdateDate(ctx, scope, current); err != nil {
				return notFound(err)
			}
		}

		// 3. Nested exercise sets.
		if in.ExerciseSets != nil {
			existing, err := tx.ExerciseSets().ListByWorkout(ctx, id)
			if err != nil {
				return err
			}
			plan := PlanExerciseSets(existing, in.ExerciseSets)
			if err := applyPlan(ctx, tx, current, plan); err != nil {
				return err
			}
			log.Debug("exercise sets reconciled",
				slog.String("workout_id", id),
				slog.Int("updated", len(plan.Update)),
				slog.Int("created", len(plan.Create)),
				slog.Int("deleted", len(plan.Delete)),
			)
		}

		w, err = s.get(ctx, tx, store.Scope{}, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error("failed to update workout", slog.String("workout_id", id), slog.Any("error", err))
		}
		return domain.Workout{}, err
	}
	return w, nil
}

func (s *WorkoutService) Delete(ctx context.Context, actor Actor, id string) error {
	return notFound(s.Store.Workouts().Delete(ctx, actor.scope(), id))
}

func applyPlan(ctx context.Context, tx store.Tx, w domain.Workout, plan ExerciseSetPlan) error {
	for _, es := range plan.Update {
		if err := tx.ExerciseSets().UpdateExercise(ctx, store.Scope{}, es.ID, es.ExerciseID); err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	for _, item := range plan.Create {
		if err := createExerciseSet(ctx, tx, w, item.ExerciseID, now); err != nil {
			return err
		}
	}
	for _, id := range plan.Delete {
		if err := tx.ExerciseSets().Delete(ctx, store.Scope{}, id); err != nil {
			return err
		}
	}
	return nil
}

// createExerciseSet adds a child to w, owned by the workout's owner.
func createExerciseSet(ctx context.Context, st store.Store, w domain.Workout, exerciseID string, now time.Time) error {
	return st.ExerciseSets().Create(ctx, domain.ExerciseSet{
		ID:         idx.New().String(),
		WorkoutID:  w.ID,
		ExerciseID: exerciseID,
		UserID:     w.UserID,
		CreatedAt:  now,
	})
}
