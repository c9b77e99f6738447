package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of a workout date.
const DateLayout = time.DateOnly

// Workout is one training session owned by a user.
type Workout struct {
	ID        string
	UserID    string
	Date      time.Time // midnight UTC
	CreatedAt time.Time

	ExerciseSets []ExerciseSet
}

// ExerciseSet groups the sets performed for one exercise within a workout.
type ExerciseSet struct {
	ID           string
	WorkoutID    string
	ExerciseID   string
	ExerciseName string // read only, joined from the catalog
	UserID       string
	CreatedAt    time.Time

	Sets []Set
}

type Set struct {
	ID            string
	ExerciseSetID string
	UserID        string
	Reps          int
	RepsUnit      RepsUnit
	Weight        decimal.Decimal
	WeightUnit    WeightUnit
	Rest          int
	RestUnit      RestUnit
	CreatedAt     time.Time
}

// RestMinutes converts the set's rest period to minutes.
func (s Set) RestMinutes() decimal.Decimal {
	return s.RestUnit.ToMinutes(s.Rest)
}
