package calculator

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// EMI is the fixed monthly installment for an amortizing loan.
//
//	r = annualRatePercent / 12 / 100
//	EMI = P × r × (1+r)^n / ((1+r)^n - 1)
//
// A zero rate makes the denominator vanish, so it is special-cased to P / n.
// (1+r)^n - 1 is computed as expm1(n·log1p(r)) so tiny rates keep their
// precision; when it overflows the installment tends to P × r.
func EMI(principal, annualRatePercent float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	n := float64(months)
	r := annualRatePercent / 12 / 100
	if r == 0 {
		return principal / n
	}
	growthMinusOne := math.Expm1(n * math.Log1p(r))
	if math.IsInf(growthMinusOne, 1) {
		return principal * r
	}
	return principal * r * (1 + 1/growthMinusOne)
}

// NewLoan builds an active loan with its EMI fixed at creation.
func NewLoan(title string, principal, annualRatePercent float64, months int, startDate string) (models.Loan, error) {
	l := models.Loan{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(title),
		TotalAmount:    principal,
		InterestRate:   annualRatePercent,
		DurationMonths: months,
		StartDate:      startDate,
	}
	if err := validateLoanTerms(l); err != nil {
		return models.Loan{}, err
	}
	l.EMIAmount = EMI(principal, annualRatePercent, months)
	if !finite(l.EMIAmount) {
		return models.Loan{}, models.Invalid("emiAmount", "cannot be computed for these terms")
	}
	return l, nil
}

func validateLoanTerms(l models.Loan) error {
	if strings.TrimSpace(l.Title) == "" {
		return models.Invalid("title", "must not be empty")
	}
	if err := positive("totalAmount", l.TotalAmount); err != nil {
		return err
	}
	if err := nonNegative("interestRate", l.InterestRate); err != nil {
		return err
	}
	if l.DurationMonths <= 0 {
		return models.Invalid("durationMonths", "must be a positive number of months")
	}
	return validDate("startDate", l.StartDate)
}

// ValidateLoan checks a stored loan, including its payment counter.
func ValidateLoan(l models.Loan) error {
	if err := validateLoanTerms(l); err != nil {
		return err
	}
	if l.PaidMonths < 0 || l.PaidMonths > l.DurationMonths {
		return models.Invalid("paidMonths", "must be between 0 and %d", l.DurationMonths)
	}
	return nil
}

// PayInstallment advances the loan by one month.
// It reports false, and returns the loan unchanged, once the loan is completed.
func PayInstallment(l models.Loan) (models.Loan, bool) {
	if l.PaidMonths >= l.DurationMonths {
		l.IsCompleted = true
		return l, false
	}
	l.PaidMonths = min(l.DurationMonths, l.PaidMonths+1)
	l.IsCompleted = l.PaidMonths == l.DurationMonths
	return l, true
}

// RemainingBalance is the sum of the unpaid installments.
// It ignores the true principal/interest split.
func RemainingBalance(l models.Loan) float64 {
	return float64(l.DurationMonths-l.PaidMonths) * l.EMIAmount
}

// Progress is the paid fraction of the loan in [0, 1].
func Progress(l models.Loan) float64 {
	if l.DurationMonths <= 0 {
		return 0
	}
	return float64(l.PaidMonths) / float64(l.DurationMonths)
}

// TotalMonthlyEMI sums the installments of every loan still running.
func TotalMonthlyEMI(loans []models.Loan) float64 {
	var total float64
	for _, l := range loans {
		if !l.IsCompleted {
			total += l.EMIAmount
		}
	}
	return total
}
