// Package model holds the records the repositories read and write.
//
// These are plain structs built from result rows; the `db` tags name the
// columns pgx maps them from.
package model

import "math"

// DefaultLimit caps list queries when the caller does not pass a limit.
const DefaultLimit = 10

// MinorUnitsPerUnit converts caller-facing currency to stored cents.
const MinorUnitsPerUnit = 100

// MaxPricePerNight is the largest whole-unit price whose minor-unit value
// still fits the INTEGER cost_per_night column.
const MaxPricePerNight = math.MaxInt32 / MinorUnitsPerUnit

// ToMinorUnits converts a whole-currency amount to minor units (cents).
// Amounts beyond the int64 range saturate instead of wrapping.
func ToMinorUnits(units int64) int64 {
	switch {
	case units > math.MaxInt64/MinorUnitsPerUnit:
		return math.MaxInt64
	case units < math.MinInt64/MinorUnitsPerUnit:
		return math.MinInt64
	}
	return units * MinorUnitsPerUnit
}

// NormalizeLimit returns DefaultLimit for non-positive limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
