package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
)

type SetService struct {
	Store store.Store
}

// SetWrite is the payload of set writes. Nil fields take their defaults on
// create and are left untouched on update.
type SetWrite struct {
	ExerciseSetID *string
	Reps          *int
	RepsUnit      *string
	Weight        *decimal.Decimal
	WeightUnit    *string
	Rest          *int
	RestUnit      *string
	Partial       bool
}

func msgBadChoice(v string) string {
	return fmt.Sprintf("%q is not a valid choice.", v)
}

func choiceRule[T ~string](valid []T) *validation.InRule {
	allowed := make([]any, len(valid))
	for i, v := range valid {
		allowed[i] = string(v)
	}
	return validation.In(allowed...)
}

func (in SetWrite) validate() *ValidationError {
	ve := &ValidationError{}
	errs := validation.Errors{}

	nonNegative := validation.Min(0).Error("Ensure this value is greater than or equal to 0.")
	if in.Reps != nil {
		errs["reps"] = validation.Validate(*in.Reps, nonNegative)
	}
	if in.Rest != nil {
		errs["rest"] = validation.Validate(*in.Rest, nonNegative)
	}
	if in.RepsUnit != nil {
		errs["reps_unit"] = validation.Validate(*in.RepsUnit,
			validation.Required.Error(MsgBlank),
			choiceRule(domain.RepsUnits).Error(msgBadChoice(*in.RepsUnit)))
	}
	if in.WeightUnit != nil {
		errs["weight_unit"] = validation.Validate(*in.WeightUnit,
			validation.Required.Error(MsgBlank),
			choiceRule(domain.WeightUnits).Error(msgBadChoice(*in.WeightUnit)))
	}
	if in.RestUnit != nil {
		errs["rest_unit"] = validation.Validate(*in.RestUnit,
			validation.Required.Error(MsgBlank),
			choiceRule(domain.RestUnits).Error(msgBadChoice(*in.RestUnit)))
	}
	if in.Weight != nil {
		errs["weight"] = domain.ValidateWeight(*in.Weight)
	}
	_ = ve.Merge(errs.Filter())
	return ve
}

// apply copies the present fields onto s.
func (in SetWrite) apply(s *domain.Set) {
	if in.Reps != nil {
		s.Reps = *in.Reps
	}
	if in.RepsUnit != nil {
		s.RepsUnit = domain.RepsUnit(*in.RepsUnit)
	}
	if in.Weight != nil {
		s.Weight = *in.Weight
	}
	if in.WeightUnit != nil {
		s.WeightUnit = domain.WeightUnit(*in.WeightUnit)
	}
	if in.Rest != nil {
		s.Rest = *in.Rest
	}
	if in.RestUnit != nil {
		s.RestUnit = domain.RestUnit(*in.RestUnit)
	}
}

// List returns the actor's sets, optionally narrowed to one weight unit.
func (s *SetService) List(ctx context.Context, actor Actor, weightUnit string) ([]domain.Set, error) {
	weightUnit = strings.TrimSpace(weightUnit)
	if weightUnit != "" && !domain.WeightUnit(weightUnit).Valid() {
		return nil, fieldError("weight_unit", "Select a valid choice. "+weightUnit+" is not one of the available choices.")
	}
	sets, err := s.Store.Sets().List(ctx, actor.scope(), store.SetFilter{WeightUnit: domain.WeightUnit(weightUnit)})
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []domain.Set{}
	}
	return sets, nil
}

func (s *SetService) Get(ctx context.Context, actor Actor, id string) (domain.Set, error) {
	set, err := s.Store.Sets().Get(ctx, actor.scope(), id)
	return set, notFound(err)
}

// Create adds a set to an exercise set visible to the actor.
func (s *SetService) Create(ctx context.Context, actor Actor, in SetWrite) (domain.Set, error) {
	ve := in.validate()
	parent, err := s.parent(ctx, actor, ve, in.ExerciseSetID, true)
	if err != nil {
		return domain.Set{}, err
	}
	if err := ve.Err(); err != nil {
		return domain.Set{}, err
	}

	set := domain.Set{
		ID:            idx.New().String(),
		ExerciseSetID: parent.ID,
		UserID:        parent.UserID,
		Reps:          domain.DefaultReps,
		RepsUnit:      domain.DefaultRepsUnit,
		Weight:        decimal.Zero,
		WeightUnit:    domain.DefaultWeightUnit,
		Rest:          domain.DefaultRest,
		RestUnit:      domain.DefaultRestUnit,
		CreatedAt:     time.Now().UTC(),
	}
	in.apply(&set)

	if err := s.Store.Sets().Create(ctx, set); err != nil {
		return domain.Set{}, err
	}
	return set, nil
}

// Update changes a set. A full update must name the exercise set.
func (s *SetService) Update(ctx context.Context, actor Actor, id string, in SetWrite) (domain.Set, error) {
	scope := actor.scope()
	set, err := s.Store.Sets().Get(ctx, scope, id)
	if err != nil {
		return domain.Set{}, notFound(err)
	}

	ve := in.validate()
	if in.ExerciseSetID != nil || !in.Partial {
		parent, err := s.parent(ctx, actor, ve, in.ExerciseSetID, !in.Partial)
		if err != nil {
			return domain.Set{}, err
		}
		if parent.ID != "" {
			set.ExerciseSetID = parent.ID
		}
	}
	if err := ve.Err(); err != nil {
		return domain.Set{}, err
	}

	in.apply(&set)
	if err := s.Store.Sets().Update(ctx, scope, set); err != nil {
		return domain.Set{}, notFound(err)
	}
	return set, nil
}

func (s *SetService) Delete(ctx context.Context, actor Actor, id string) error {
	return notFound(s.Store.Sets().Delete(ctx, actor.scope(), id))
}

// parent resolves the exercise_set field, recording problems in ve.
func (s *SetService) parent(ctx context.Context, actor Actor, ve *ValidationError, id *string, required bool) (domain.ExerciseSet, error) {
	if id == nil || *id == "" {
		if required {
			ve.Add("exercise_set", MsgRequired)
		}
		return domain.ExerciseSet{}, nil
	}
	es, err := s.Store.ExerciseSets().Get(ctx, actor.scope(), *id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return es, err
		}
		ve.Add("exercise_set", msgMissingObject(*id))
	}
	return es, nil
}
