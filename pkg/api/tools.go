package api

import "github.com/shohagvaii216/FinTrack/internal/calculator"

type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type ConvertResponse struct {
	Amount     float64  `json:"amount"`
	Currencies []string `json:"currencies"`
}

// IncomeTaxRequest uses the profile gender when Female is unset.
type IncomeTaxRequest struct {
	AnnualIncome float64 `json:"annualIncome"`
	Female       *bool   `json:"female,omitempty"`
}

type IncomeTaxResponse struct {
	Breakdown calculator.TaxBreakdown `json:"breakdown"`
}

// ZakatRequest uses the wallet cash balance when Cash is unset.
type ZakatRequest struct {
	Cash   *float64 `json:"cash,omitempty"`
	Assets float64  `json:"assets"`
	Gold   float64  `json:"gold"`
	Silver float64  `json:"silver"`
}

type ZakatResponse struct {
	Result calculator.ZakatResult `json:"result"`
}
