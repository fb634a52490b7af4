package calculator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// ParseParticipants splits a comma-separated list of names ("Rafi, Nila ,Tanu").
// Names are trimmed and empty names are dropped.
func ParseParticipants(input string) []string {
	return cleanNames(strings.Split(input, ","))
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// NewBillSplit validates the inputs and builds an unsettled split.
// The payer is the first participant.
func NewBillSplit(title string, totalAmount float64, participants []string, date string) (models.BillSplit, error) {
	split := models.BillSplit{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(title),
		TotalAmount:  totalAmount,
		Participants: cleanNames(participants),
		Date:         date,
	}
	if len(split.Participants) > 0 {
		split.Payer = split.Participants[0]
	}
	if err := ValidateBillSplit(split); err != nil {
		return models.BillSplit{}, err
	}
	return split, nil
}

// ValidateBillSplit checks the invariants of a stored split.
func ValidateBillSplit(s models.BillSplit) error {
	if strings.TrimSpace(s.Title) == "" {
		return models.Invalid("title", "must not be empty")
	}
	if err := positive("totalAmount", s.TotalAmount); err != nil {
		return err
	}
	if len(cleanNames(s.Participants)) == 0 {
		return models.Invalid("participants", "at least one participant is required")
	}
	return validDate("date", s.Date)
}

// PerHeadShare is TotalAmount divided evenly across participants.
// A split without participants has no share and reports 0.
func PerHeadShare(s models.BillSplit) float64 {
	if len(s.Participants) == 0 {
		return 0
	}
	return s.TotalAmount / float64(len(s.Participants))
}

// ToggleSettled returns a copy of the split with the settled flag flipped.
func ToggleSettled(s models.BillSplit) models.BillSplit {
	s.IsSettled = !s.IsSettled
	return s
}
