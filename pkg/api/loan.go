package api

import "github.com/shohagvaii216/FinTrack/internal/models"

type CreateLoanRequest struct {
	Title          string  `json:"title"`
	TotalAmount    float64 `json:"totalAmount"`
	InterestRate   float64 `json:"interestRate"`
	DurationMonths int     `json:"durationMonths"`
	StartDate      string  `json:"startDate,omitempty"`
}

// LoanView is a loan with its derived repayment figures.
type LoanView struct {
	models.Loan
	RemainingBalance float64          `json:"remainingBalance"`
	Progress         float64          `json:"progress"`
	State            models.LoanState `json:"state"`
}

type CreateLoanResponse struct {
	Loan LoanView `json:"loan"`
}

type PayInstallmentRequest struct {
	ID string `json:"id"`
}

type PayInstallmentResponse struct {
	Loan LoanView `json:"loan"`
}

type DeleteLoanRequest struct {
	ID string `json:"id"`
}

type DeleteLoanResponse struct {
	Deleted bool `json:"deleted"`
}

type ListLoansRequest struct{}

type ListLoansResponse struct {
	Loans           []LoanView `json:"loans"`
	TotalMonthlyEMI float64    `json:"totalMonthlyEmi"`
	TotalRemaining  float64    `json:"totalRemaining"`
}
