package api

import "github.com/shohagvaii216/FinTrack/internal/models"

// CreateSplitRequest takes participants either as a list or as the
// comma-separated text typed by the user. The list wins when both are set.
type CreateSplitRequest struct {
	Title            string   `json:"title"`
	TotalAmount      float64  `json:"totalAmount"`
	Participants     []string `json:"participants,omitempty"`
	ParticipantsText string   `json:"participantsText,omitempty"`
}

// SplitView is a bill split with its derived equal share.
type SplitView struct {
	models.BillSplit
	PerHeadShare float64 `json:"perHeadShare"`
}

type CreateSplitResponse struct {
	Split SplitView `json:"split"`
}

type ToggleSettledRequest struct {
	ID string `json:"id"`
}

type ToggleSettledResponse struct {
	Split SplitView `json:"split"`
}

type DeleteSplitRequest struct {
	ID string `json:"id"`
}

type DeleteSplitResponse struct {
	Deleted bool `json:"deleted"`
}

type ListSplitsRequest struct{}

// ListSplitsResponse lists every split together with who owes whom across
// the unsettled ones.
type ListSplitsResponse struct {
	Splits    []SplitView                 `json:"splits"`
	Balances  []models.ParticipantBalance `json:"balances"`
	Transfers []models.Transfer           `json:"transfers"`
}
