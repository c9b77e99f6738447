package domain_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"Foo.Bar@EXAMPLE.Com":   "Foo.Bar@example.com",
		"  user@Example.org  ":  "user@example.org",
		"no-at-sign":            "no-at-sign",
		"weird@local@Domain.IO": "weird@local@domain.io",
	}
	for in, want := range tests {
		require.Equal(t, want, domain.NormalizeEmail(in), in)
	}
}

func TestUnitsValid(t *testing.T) {
	require.True(t, domain.RepsUnit("KM").Valid())
	require.False(t, domain.RepsUnit("km").Valid())
	require.True(t, domain.WeightUnit("BW").Valid())
	require.False(t, domain.WeightUnit("LB").Valid())
	require.True(t, domain.RestUnit("HR").Valid())
	require.False(t, domain.RestUnit("").Valid())
}

func TestRestUnit_ToMinutes(t *testing.T) {
	require.True(t, decimal.NewFromFloat(1.5).Equal(domain.RestUnitSec.ToMinutes(90)))
	require.True(t, decimal.NewFromInt(3).Equal(domain.RestUnitMin.ToMinutes(3)))
	require.True(t, decimal.NewFromInt(120).Equal(domain.RestUnitHour.ToMinutes(2)))
}

func TestValidateWeight(t *testing.T) {
	ok := []string{"0", "12.5", "100.25", strings.Repeat("9", 18) + ".99"}
	for _, s := range ok {
		require.NoError(t, domain.ValidateWeight(decimal.RequireFromString(s)), s)
	}

	bad := []string{"-1", "1.005", strings.Repeat("9", 19)}
	for _, s := range bad {
		require.Error(t, domain.ValidateWeight(decimal.RequireFromString(s)), s)
	}
}
