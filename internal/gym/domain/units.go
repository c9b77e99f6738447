package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type RepsUnit string

const (
	RepsUnitReps RepsUnit = "REPS"
	RepsUnitMin  RepsUnit = "MIN"
	RepsUnitSec  RepsUnit = "SEC"
	RepsUnitKm   RepsUnit = "KM"
)

var RepsUnits = []RepsUnit{RepsUnitReps, RepsUnitMin, RepsUnitSec, RepsUnitKm}

func (u RepsUnit) Valid() bool { return slices.Contains(RepsUnits, u) }

type WeightUnit string

const (
	WeightUnitKg         WeightUnit = "KG"
	WeightUnitBodyWeight WeightUnit = "BW"
	WeightUnitKettlebell WeightUnit = "KH"
)

var WeightUnits = []WeightUnit{WeightUnitKg, WeightUnitBodyWeight, WeightUnitKettlebell}

func (u WeightUnit) Valid() bool { return slices.Contains(WeightUnits, u) }

type RestUnit string

const (
	RestUnitSec  RestUnit = "SEC"
	RestUnitMin  RestUnit = "MIN"
	RestUnitHour RestUnit = "HR"
)

var RestUnits = []RestUnit{RestUnitSec, RestUnitMin, RestUnitHour}

func (u RestUnit) Valid() bool { return slices.Contains(RestUnits, u) }

var sixty = decimal.NewFromInt(60)

// ToMinutes converts an amount expressed in u to minutes.
func (u RestUnit) ToMinutes(amount int) decimal.Decimal {
	d := decimal.NewFromInt(int64(amount))
	switch u {
	case RestUnitSec:
		return d.Div(sixty)
	case RestUnitHour:
		return d.Mul(sixty)
	default:
		return d
	}
}

// Set defaults applied when a field is omitted on create.
const (
	DefaultReps       = 1
	DefaultRepsUnit   = RepsUnitReps
	DefaultWeightUnit = WeightUnitKg
	DefaultRest       = 0
	DefaultRestUnit   = RestUnitMin
)

// Weight bounds, matching a NUMERIC(20,2) column.
const (
	WeightMaxDigits = 20
	WeightPlaces    = 2
)

// ValidateWeight checks w fits the stored precision and is not negative.
func ValidateWeight(w decimal.Decimal) error {
	if w.IsNegative() {
		return errors.New("Ensure this value is greater than or equal to 0.")
	}
	if !w.Equal(w.Truncate(WeightPlaces)) {
		return fmt.Errorf("Ensure that there are no more than %d decimal places.", WeightPlaces)
	}
	if len(w.Truncate(0).Abs().String()) > WeightMaxDigits-WeightPlaces {
		return fmt.Errorf("Ensure that there are no more than %d digits before the decimal point.", WeightMaxDigits-WeightPlaces)
	}
	return nil
}
