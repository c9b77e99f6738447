package service

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
)

// CatalogService manages the shared exercise and muscle group catalog.
// Anyone authenticated may read it; only staff may change it.
type CatalogService struct {
	Store store.Store
}

type CatalogInput struct {
	Name           string
	Description    string
	MuscleGroupIDs []string
}

func (in CatalogInput) validate() *ValidationError {
	ve := &ValidationError{}
	_ = ve.Merge(validation.Errors{
		"name": validation.Validate(strings.TrimSpace(in.Name),
			validation.Required.Error(MsgBlank),
			validation.RuneLength(0, 255).Error("Ensure this field has no more than 255 characters.")),
	}.Filter())
	return ve
}

func requireStaff(actor Actor) error {
	if !actor.Staff && !actor.Superuser {
		return ErrForbidden
	}
	return nil
}

func (s *CatalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.Store.Exercises().List(ctx)
}

func (s *CatalogService) GetExercise(ctx context.Context, id string) (domain.Exercise, error) {
	e, err := s.Store.Exercises().Get(ctx, id)
	return e, notFound(err)
}

func (s *CatalogService) CreateExercise(ctx context.Context, actor Actor, in CatalogInput) (domain.Exercise, error) {
	if err := requireStaff(actor); err != nil {
		return domain.Exercise{}, err
	}
	ve := in.validate()
	for _, id := range in.MuscleGroupIDs {
		if _, err := s.Store.MuscleGroups().Get(ctx, id); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return domain.Exercise{}, err
			}
			ve.Add("muscle_groups", msgMissingObject(id))
		}
	}
	if err := ve.Err(); err != nil {
		return domain.Exercise{}, err
	}

	e := domain.Exercise{
		ID:             idx.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		MuscleGroupIDs: in.MuscleGroupIDs,
		CreatedAt:      time.Now().UTC(),
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Exercises().Create(ctx, e)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Exercise{}, fieldError("name", "exercise with this name already exists.")
	}
	return e, err
}

func (s *CatalogService) DeleteExercise(ctx context.Context, actor Actor, id string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	return notFound(s.Store.Exercises().Delete(ctx, id))
}

func (s *CatalogService) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.Store.MuscleGroups().List(ctx)
}

func (s *CatalogService) GetMuscleGroup(ctx context.Context, id string) (domain.MuscleGroup, error) {
	m, err := s.Store.MuscleGroups().Get(ctx, id)
	return m, notFound(err)
}

func (s *CatalogService) CreateMuscleGroup(ctx context.Context, actor Actor, in CatalogInput) (domain.MuscleGroup, error) {
	if err := requireStaff(actor); err != nil {
		return domain.MuscleGroup{}, err
	}
	if err := in.validate().Err(); err != nil {
		return domain.MuscleGroup{}, err
	}

	m := domain.MuscleGroup{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.MuscleGroups().Create(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.MuscleGroup{}, fieldError("name", "muscle group with this name already exists.")
		}
		return domain.MuscleGroup{}, err
	}
	return m, nil
}

func (s *CatalogService) DeleteMuscleGroup(ctx context.Context, actor Actor, id string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	return notFound(s.Store.MuscleGroups().Delete(ctx, id))
}
