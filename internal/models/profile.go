package models

// Profile holds the owner's settings.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	BaseCurrency string `json:"baseCurrency,omitempty"`

	// Gender selects the tax-free threshold ("male" or "female").
	Gender string `json:"gender,omitempty"`

	// ReminderTime is the daily digest time as "HH:MM" (24h clock).
	ReminderTime string `json:"reminderTime,omitempty"`

	IsPINEnabled bool `json:"isPinEnabled"`

	// PINHash is the bcrypt hash of the lock PIN. It is persisted locally
	// but stripped from API responses and exports.
	PINHash string `json:"pinHash,omitempty"`
}

// Public returns a copy of the profile safe to hand out.
func (p Profile) Public() Profile {
	p.PINHash = ""
	return p
}
