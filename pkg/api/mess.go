package api

import "github.com/shohagvaii216/FinTrack/internal/models"

type AddMemberRequest struct {
	Name    string  `json:"name"`
	Deposit float64 `json:"deposit"`
}

type AddMemberResponse struct {
	Member models.Member `json:"member"`
}

type RemoveMemberRequest struct {
	ID string `json:"id"`
}

type RemoveMemberResponse struct {
	Removed bool `json:"removed"`
}

type RecordBazaarRequest struct {
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Item     string  `json:"item"`
	Date     string  `json:"date,omitempty"`
}

type RecordBazaarResponse struct {
	Entry models.BazaarEntry `json:"entry"`
}

type DeleteBazaarRequest struct {
	ID string `json:"id"`
}

type DeleteBazaarResponse struct {
	Deleted bool `json:"deleted"`
}

type RecordMealRequest struct {
	MemberID string  `json:"memberId"`
	Count    float64 `json:"count"`
	Date     string  `json:"date,omitempty"`
}

type RecordMealResponse struct {
	Entry models.MealEntry `json:"entry"`
}

type DeleteMealRequest struct {
	ID string `json:"id"`
}

type DeleteMealResponse struct {
	Deleted bool `json:"deleted"`
}

type GetSummaryRequest struct{}

// GetSummaryResponse is the mess view: the derived summary plus the raw
// entries it was computed from.
type GetSummaryResponse struct {
	Summary models.MessSummary   `json:"summary"`
	Bazaar  []models.BazaarEntry `json:"bazaar"`
	Meals   []models.MealEntry   `json:"meals"`
}
