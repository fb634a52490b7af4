package calculator

import (
	"time"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// DefaultReminderTime is used when the profile has no reminder time.
const DefaultReminderTime = "22:00"

// ParseClock parses an "HH:MM" 24-hour time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != len("15:04") {
		return 0, 0, models.Invalid("reminderTime", "must be an HH:MM time")
	}
	return t.Hour(), t.Minute(), nil
}

// ValidateProfile checks the owner settings.
func ValidateProfile(p models.Profile) error {
	if p.ReminderTime != "" {
		if _, _, err := ParseClock(p.ReminderTime); err != nil {
			return err
		}
	}
	switch p.Gender {
	case "", "male", "female":
	default:
		return models.Invalid("gender", "must be male or female")
	}
	if p.BaseCurrency != "" {
		if _, ok := MockRates[p.BaseCurrency]; !ok {
			return models.Invalid("baseCurrency", "unsupported currency %q", p.BaseCurrency)
		}
	}
	return nil
}
