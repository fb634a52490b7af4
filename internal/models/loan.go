package models

// Loan is a fixed-installment loan.
//
// EMIAmount is computed once at creation and never recomputed. Paying an
// installment only advances PaidMonths; there is no principal/interest
// breakdown.
type Loan struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// TotalAmount is the borrowed principal.
	TotalAmount float64 `json:"totalAmount"`

	// InterestRate is the annual rate in percent (12 means 12%).
	InterestRate float64 `json:"interestRate"`

	DurationMonths int     `json:"durationMonths"`
	StartDate      string  `json:"startDate"`
	EMIAmount      float64 `json:"emiAmount"`

	// PaidMonths is always within [0, DurationMonths].
	PaidMonths int `json:"paidMonths"`

	// IsCompleted is true exactly when PaidMonths == DurationMonths.
	IsCompleted bool `json:"isCompleted"`
}

// LoanState is the lifecycle state of a loan.
type LoanState string

const (
	LoanActive    LoanState = "Active"
	LoanCompleted LoanState = "Completed"
)

// State reports whether the loan still has installments left.
func (l Loan) State() LoanState {
	if l.PaidMonths >= l.DurationMonths {
		return LoanCompleted
	}
	return LoanActive
}
