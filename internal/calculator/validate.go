package calculator

import (
	"math"
	"time"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// MaxAmount bounds every stored amount and count, so sums over whole
// collections stay finite.
const MaxAmount = 1e12

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// positive rejects zero, negative, non-finite and out-of-range amounts.
func positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return models.Invalid(field, "must be greater than zero")
	}
	if v > MaxAmount {
		return models.Invalid(field, "must not exceed %.0f", float64(MaxAmount))
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if !finite(v) || v < 0 {
		return models.Invalid(field, "must not be negative")
	}
	if v > MaxAmount {
		return models.Invalid(field, "must not exceed %.0f", float64(MaxAmount))
	}
	return nil
}

// validDate accepts an empty date (filled in by the caller) or a "YYYY-MM-DD" day.
func validDate(field, date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.Invalid(field, "must be a YYYY-MM-DD date")
	}
	return nil
}
