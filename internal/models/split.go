package models

// BillSplit is a one-off shared expense divided evenly among participants.
type BillSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string `json:"id"`

	// Title is the human-readable name (e.g., "Dinner at Star Kabab").
	Title string `json:"title"`

	// TotalAmount is the full bill amount.
	TotalAmount float64 `json:"totalAmount"`

	// Participants are the names sharing the bill, in entry order.
	// Duplicates are allowed and count as separate shares.
	Participants []string `json:"participants"`

	// Payer is the name of whoever fronted the money.
	// Defaults to the first participant.
	Payer string `json:"payer"`

	// Date is the creation day ("YYYY-MM-DD").
	Date string `json:"date"`

	// IsSettled is toggled by the user once everyone has paid back.
	IsSettled bool `json:"isSettled"`
}

// ParticipantBalance is one person's position across unsettled bill splits.
type ParticipantBalance struct {
	Name       string  `json:"name"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalOwed  float64 `json:"totalOwed"`
	NetBalance float64 `json:"netBalance"` // Positive = owed money, Negative = owes money
}

// Transfer is a suggested payment that settles part of the outstanding splits.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
