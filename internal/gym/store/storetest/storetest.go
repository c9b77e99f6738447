// Package storetest is a conformance suite run against every store driver.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Run exercises st, which must be migrated and empty.
func Run(t *testing.T, st store.Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, st) })
	t.Run("session tokens", func(t *testing.T) { testSessionTokens(t, st) })
	t.Run("catalog", func(t *testing.T) { testCatalog(t, st) })
	t.Run("training scope and cascade", func(t *testing.T) { testTraining(t, st) })
	t.Run("transactions", func(t *testing.T) { testTx(t, st) })
}

func newUser(email string) domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     "user",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MustUser inserts a user with the given email.
func MustUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	u := newUser(email)
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

// MustExercise inserts a catalog exercise.
func MustExercise(t *testing.T, st store.Store, name string) domain.Exercise {
	t.Helper()
	e := domain.Exercise{ID: idx.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, st.Exercises().Create(context.Background(), e))
	return e
}

func testUsers(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := MustUser(t, st, "alice@example.com")

	got, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, got.IsActive)
	require.False(t, got.IsVerified)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Second)

	err = st.Users().CreateUser(ctx, newUser("alice@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	changed, err := st.Users().SetVerified(ctx, u.ID, true)
	require.NoError(t, err)
	require.True(t, changed)
	changed, err = st.Users().SetVerified(ctx, u.ID, true)
	require.NoError(t, err)
	require.False(t, changed)
	_, err = st.Users().SetVerified(ctx, idx.New().String(), true)
	require.ErrorIs(t, err, store.ErrNotFound)

	// got was read before verification; a profile write must not undo it.
	got.Username = "alice2"
	require.NoError(t, st.Users().UpdateUser(ctx, got))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice2", got.Username)
	require.True(t, got.IsVerified)

	got.Email = "alice2@example.com"
	require.NoError(t, st.Users().UpdateUser(ctx, got))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice2@example.com", got.Email)
	require.False(t, got.IsVerified)

	require.NoError(t, st.Users().SetActive(ctx, u.ID, false))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.ErrorIs(t, st.Users().SetActive(ctx, "missing", false), store.ErrNotFound)

	other := MustUser(t, st, "bob@example.com")
	other.Email = "alice2@example.com"
	require.ErrorIs(t, st.Users().UpdateUser(ctx, other), store.ErrAlreadyExists)

	require.NoError(t, st.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.ErrorIs(t, st.Users().UpdatePasswordHash(ctx, "missing", "x"), store.ErrNotFound)
}

func testSessionTokens(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := MustUser(t, st, "tokens@example.com")

	tok := domain.SessionToken{Value: "abc123", UserID: u.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, st.SessionTokens().Create(ctx, tok))
	require.ErrorIs(t, st.SessionTokens().Create(ctx, domain.SessionToken{
		Value: "other", UserID: u.ID, CreatedAt: time.Now().UTC(),
	}), store.ErrAlreadyExists)

	byUser, err := st.SessionTokens().GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "abc123", byUser.Value)

	byValue, err := st.SessionTokens().GetByValue(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, u.ID, byValue.UserID)

	_, err = st.SessionTokens().GetByValue(ctx, "ABC123")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := st.SessionTokens().DeleteByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	_, err = st.SessionTokens().GetByUserID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testCatalog(t *testing.T, st store.Store) {
	ctx := context.Background()
	chest := domain.MuscleGroup{ID: idx.New().String(), Name: "Chest", CreatedAt: time.Now().UTC()}
	triceps := domain.MuscleGroup{ID: idx.New().String(), Name: "Triceps", Description: "back of arm", CreatedAt: time.Now().UTC()}
	require.NoError(t, st.MuscleGroups().Create(ctx, chest))
	require.NoError(t, st.MuscleGroups().Create(ctx, triceps))
	require.ErrorIs(t, st.MuscleGroups().Create(ctx, domain.MuscleGroup{
		ID: idx.New().String(), Name: "Chest", CreatedAt: time.Now().UTC(),
	}), store.ErrAlreadyExists)

	bench := domain.Exercise{
		ID:             idx.New().String(),
		Name:           "Bench press",
		MuscleGroupIDs: []string{chest.ID, triceps.ID},
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, st.Exercises().Create(ctx, bench))

	got, err := st.Exercises().Get(ctx, bench.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, bench.MuscleGroupIDs, got.MuscleGroupIDs)

	list, err := st.Exercises().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	groups, err := st.MuscleGroups().List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.NoError(t, st.MuscleGroups().Delete(ctx, triceps.ID))
	got, err = st.Exercises().Get(ctx, bench.ID)
	require.NoError(t, err)
	require.Equal(t, []string{chest.ID}, got.MuscleGroupIDs)

	require.ErrorIs(t, st.Exercises().Delete(ctx, idx.New().String()), store.ErrNotFound)
}

func testTraining(t *testing.T, st store.Store) {
	ctx := context.Background()
	owner := MustUser(t, st, "owner@example.com")
	intruder := MustUser(t, st, "intruder@example.com")
	squat := MustExercise(t, st, "Squat")

	w := domain.Workout{
		ID:        idx.New().String(),
		UserID:    owner.ID,
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Workouts().Create(ctx, w))

	es := domain.ExerciseSet{
		ID: idx.New().String(), WorkoutID: w.ID, ExerciseID: squat.ID, UserID: owner.ID, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.ExerciseSets().Create(ctx, es))

	set := domain.Set{
		ID: idx.New().String(), ExerciseSetID: es.ID, UserID: owner.ID,
		Reps: 5, RepsUnit: domain.RepsUnitReps,
		Weight: decimal.RequireFromString("102.50"), WeightUnit: domain.WeightUnitKg,
		Rest: 90, RestUnit: domain.RestUnitSec,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Sets().Create(ctx, set))

	ownScope, otherScope, all := store.OwnedBy(owner.ID), store.OwnedBy(intruder.ID), store.Scope{}

	got, err := st.Workouts().Get(ctx, ownScope, w.ID)
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", got.Date.Format(domain.DateLayout))

	_, err = st.Workouts().Get(ctx, otherScope, w.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Workouts().Get(ctx, all, w.ID)
	require.NoError(t, err)

	list, err := st.Workouts().List(ctx, otherScope)
	require.NoError(t, err)
	require.Empty(t, list)

	gotES, err := st.ExerciseSets().Get(ctx, ownScope, es.ID)
	require.NoError(t, err)
	require.Equal(t, "Squat", gotES.ExerciseName)
	require.ErrorIs(t, st.ExerciseSets().Delete(ctx, otherScope, es.ID), store.ErrNotFound)

	gotSet, err := st.Sets().Get(ctx, ownScope, set.ID)
	require.NoError(t, err)
	require.True(t, set.Weight.Equal(gotSet.Weight))
	require.Equal(t, domain.RestUnitSec, gotSet.RestUnit)

	kg, err := st.Sets().List(ctx, ownScope, store.SetFilter{WeightUnit: domain.WeightUnitKg})
	require.NoError(t, err)
	require.Len(t, kg, 1)
	bw, err := st.Sets().List(ctx, ownScope, store.SetFilter{WeightUnit: domain.WeightUnitBodyWeight})
	require.NoError(t, err)
	require.Empty(t, bw)

	gotSet.Reps = 8
	require.NoError(t, st.Sets().Update(ctx, ownScope, gotSet))
	require.ErrorIs(t, st.Sets().Update(ctx, otherScope, gotSet), store.ErrNotFound)

	require.NoError(t, st.Workouts().Delete(ctx, ownScope, w.ID))
	_, err = st.ExerciseSets().Get(ctx, all, es.ID)
	require.ErrorIs(t, err, store.ErrNotFound, "exercise sets cascade with their workout")
	_, err = st.Sets().Get(ctx, all, set.ID)
	require.ErrorIs(t, err, store.ErrNotFound, "sets cascade with their exercise set")
}

var errRollback = errors.New("rollback please")

func testTx(t *testing.T, st store.Store) {
	ctx := context.Background()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, newUser("rolled@example.com")); err != nil {
			return err
		}
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
	_, err = st.Users().GetUserByEmail(ctx, "rolled@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newUser("committed@example.com"))
	}))
	_, err = st.Users().GetUserByEmail(ctx, "committed@example.com")
	require.NoError(t, err)
}
