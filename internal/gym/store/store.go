package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories are reached through accessor methods so a
// Tx exposes exactly the same surface as the Store it came from.
type Store interface {
	Users() Users
	SessionTokens() SessionTokens
	MuscleGroups() MuscleGroups
	Exercises() Exercises
	Workouts() Workouts
	ExerciseSets() ExerciseSets
	Sets() Sets

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Scope restricts training queries to one owner. The zero Scope is
// unrestricted and is only handed out to superusers.
type Scope struct {
	OwnerID string
}

// OwnedBy returns a scope limited to userID.
func OwnedBy(userID string) Scope { return Scope{OwnerID: userID} }

// Unrestricted reports whether the scope bypasses ownership.
func (s Scope) Unrestricted() bool { return s.OwnerID == "" }

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the normalised email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser writes the profile columns (email, username, password
	// hash) and bumps updated_at. A changed email clears is_verified; the
	// status flags are otherwise left alone.
	UpdateUser(ctx context.Context, u domain.User) error

	SetActive(ctx context.Context, userID string, active bool) error

	// SetVerified flips is_verified and reports whether a row changed.
	SetVerified(ctx context.Context, userID string, verified bool) (bool, error)

	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

type SessionTokens interface {
	GetByUserID(ctx context.Context, userID string) (domain.SessionToken, error)
	GetByValue(ctx context.Context, value string) (domain.SessionToken, error)

	// Create returns ErrAlreadyExists if the user already holds a token.
	Create(ctx context.Context, t domain.SessionToken) error

	// DeleteByUserID removes every token of the user and returns the count.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type MuscleGroups interface {
	List(ctx context.Context) ([]domain.MuscleGroup, error)
	Get(ctx context.Context, id string) (domain.MuscleGroup, error)
	Create(ctx context.Context, m domain.MuscleGroup) error
	Delete(ctx context.Context, id string) error
}

type Exercises interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	Get(ctx context.Context, id string) (domain.Exercise, error)
	// Create inserts the exercise and its muscle group links.
	Create(ctx context.Context, e domain.Exercise) error
	Delete(ctx context.Context, id string) error
}

type Workouts interface {
	List(ctx context.Context, scope Scope) ([]domain.Workout, error)
	Get(ctx context.Context, scope Scope, id string) (domain.Workout, error)
	Create(ctx context.Context, w domain.Workout) error
	UpdateDate(ctx context.Context, scope Scope, w domain.Workout) error
	// Delete cascades to exercise sets and their sets.
	Delete(ctx context.Context, scope Scope, id string) error
}

type ExerciseSets interface {
	List(ctx context.Context, scope Scope) ([]domain.ExerciseSet, error)
	ListByWorkout(ctx context.Context, workoutID string) ([]domain.ExerciseSet, error)
	Get(ctx context.Context, scope Scope, id string) (domain.ExerciseSet, error)
	Create(ctx context.Context, es domain.ExerciseSet) error
	UpdateExercise(ctx context.Context, scope Scope, id, exerciseID string) error
	Delete(ctx context.Context, scope Scope, id string) error
}

// SetFilter narrows Sets.List. Empty fields match everything.
type SetFilter struct {
	WeightUnit    domain.WeightUnit
	ExerciseSetID string
}

type Sets interface {
	List(ctx context.Context, scope Scope, f SetFilter) ([]domain.Set, error)
	Get(ctx context.Context, scope Scope, id string) (domain.Set, error)
	Create(ctx context.Context, s domain.Set) error
	Update(ctx context.Context, scope Scope, s domain.Set) error
	Delete(ctx context.Context, scope Scope, id string) error
}
