package api

import (
	"github.com/shohagvaii216/FinTrack/internal/advisor"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

type ScanReceiptRequest struct {
	// Image is base64 encoded, optionally as a data URL.
	Image string `json:"image"`
}

// SuggestionResponse is a transaction read by the advisor. It is not
// recorded; the client confirms it with WalletService.AddTransaction.
type SuggestionResponse struct {
	Suggestion models.Transaction `json:"suggestion"`
}

type ParseSMSRequest struct {
	Text string `json:"text"`
}

type ParseVoiceRequest struct {
	Text string `json:"text"`
}

type ForecastRequest struct{}

type ForecastResponse struct {
	Forecast advisor.Forecast `json:"forecast"`
}

type AskRequest struct {
	Query   string         `json:"query"`
	History []advisor.Turn `json:"history,omitempty"`
}

// AskResponse sets Fallback when the advisor could not be reached and
// Answer is the stock apology.
type AskResponse struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback"`
}
