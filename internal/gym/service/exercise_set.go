package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
)

type ExerciseSetService struct {
	Store store.Store
}

// ExerciseSetWrite is the payload of exercise set writes. The workout can
// only be chosen on create.
type ExerciseSetWrite struct {
	WorkoutID  *string
	ExerciseID *string
	Partial    bool
}

func (s *ExerciseSetService) List(ctx context.Context, actor Actor) ([]domain.ExerciseSet, error) {
	return loadTree(ctx, s.Store, actor.scope())
}

func (s *ExerciseSetService) Get(ctx context.Context, actor Actor, id string) (domain.ExerciseSet, error) {
	return loadExerciseSet(ctx, s.Store, actor.scope(), id)
}

// Create adds an exercise set to a workout visible to the actor.
func (s *ExerciseSetService) Create(ctx context.Context, actor Actor, in ExerciseSetWrite) (domain.ExerciseSet, error) {
	ve := &ValidationError{}
	if in.WorkoutID == nil || *in.WorkoutID == "" {
		ve.Add("workout", MsgRequired)
	}
	if in.ExerciseID == nil || *in.ExerciseID == "" {
		ve.Add("exercise", MsgRequired)
	}
	if err := ve.Err(); err != nil {
		return domain.ExerciseSet{}, err
	}

	w, err := s.Store.Workouts().Get(ctx, actor.scope(), *in.WorkoutID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return domain.ExerciseSet{}, err
		}
		ve.Add("workout", msgMissingObject(*in.WorkoutID))
	}
	if err := s.checkExercise(ctx, ve, *in.ExerciseID); err != nil {
		return domain.ExerciseSet{}, err
	}
	if err := ve.Err(); err != nil {
		return domain.ExerciseSet{}, err
	}

	es := domain.ExerciseSet{
		ID:         idx.New().String(),
		WorkoutID:  w.ID,
		ExerciseID: *in.ExerciseID,
		UserID:     w.UserID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.ExerciseSets().Create(ctx, es); err != nil {
		return domain.ExerciseSet{}, err
	}
	return loadExerciseSet(ctx, s.Store, store.Scope{}, es.ID)
}

// Update points the exercise set at another exercise.
func (s *ExerciseSetService) Update(ctx context.Context, actor Actor, id string, in ExerciseSetWrite) (domain.ExerciseSet, error) {
	scope := actor.scope()
	if _, err := s.Store.ExerciseSets().Get(ctx, scope, id); err != nil {
		return domain.ExerciseSet{}, notFound(err)
	}

	ve := &ValidationError{}
	switch {
	case in.ExerciseID == nil:
		if !in.Partial {
			ve.Add("exercise", MsgRequired)
		}
	case *in.ExerciseID == "":
		ve.Add("exercise", MsgBlank)
	default:
		if err := s.checkExercise(ctx, ve, *in.ExerciseID); err != nil {
			return domain.ExerciseSet{}, err
		}
	}
	if err := ve.Err(); err != nil {
		return domain.ExerciseSet{}, err
	}

	if in.ExerciseID != nil {
		if err := s.Store.ExerciseSets().UpdateExercise(ctx, scope, id, *in.ExerciseID); err != nil {
			return domain.ExerciseSet{}, notFound(err)
		}
	}
	return loadExerciseSet(ctx, s.Store, scope, id)
}

func (s *ExerciseSetService) Delete(ctx context.Context, actor Actor, id string) error {
	return notFound(s.Store.ExerciseSets().Delete(ctx, actor.scope(), id))
}

// TotalRestTime sums the rest periods of the exercise set's sets in minutes.
func (s *ExerciseSetService) TotalRestTime(ctx context.Context, actor Actor, id string) (domain.ExerciseSet, decimal.Decimal, error) {
	es, err := loadExerciseSet(ctx, s.Store, actor.scope(), id)
	if err != nil {
		return es, decimal.Zero, err
	}
	if len(es.Sets) == 0 {
		return es, decimal.Zero, ErrNoSets
	}

	total := decimal.Zero
	for _, set := range es.Sets {
		total = total.Add(set.RestMinutes())
	}
	return es, total, nil
}

// HighestWeight returns the heaviest set of the exercise set and its unit.
// Ties keep the earliest set.
func (s *ExerciseSetService) HighestWeight(ctx context.Context, actor Actor, id string) (domain.ExerciseSet, domain.Set, error) {
	es, err := loadExerciseSet(ctx, s.Store, actor.scope(), id)
	if err != nil {
		return es, domain.Set{}, err
	}
	if len(es.Sets) == 0 {
		return es, domain.Set{}, ErrNoWeight
	}

	best := es.Sets[0]
	for _, set := range es.Sets[1:] {
		if set.Weight.GreaterThan(best.Weight) {
			best = set
		}
	}
	return es, best, nil
}

func (s *ExerciseSetService) checkExercise(ctx context.Context, ve *ValidationError, exerciseID string) error {
	_, err := s.Store.Exercises().Get(ctx, exerciseID)
	if errors.Is(err, store.ErrNotFound) {
		ve.Add("exercise", msgMissingObject(exerciseID))
		return nil
	}
	return err
}
