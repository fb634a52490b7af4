package ledger

import (
	"context"
	"log/slog"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

func loanID(l models.Loan) string { return l.ID }

// CreateLoan records a new loan. An empty start date means today.
func (l *Ledger) CreateLoan(ctx context.Context, title string, principal, annualRatePercent float64, months int, startDate string) (models.Loan, error) {
	if startDate == "" {
		startDate = l.Today()
	}
	loan, err := calculator.NewLoan(title, principal, annualRatePercent, months, startDate)
	if err != nil {
		return models.Loan{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Loans = appended(snap.Loans, loan)
	l.commit(ctx, snap, Loans)
	slog.Info("Loan created", "loan_id", loan.ID, "emi", loan.EMIAmount, "months", months)
	return loan, nil
}

// PayInstallment marks one more month as paid.
// Paying a completed loan is a no-op that returns the loan unchanged.
func (l *Ledger) PayInstallment(ctx context.Context, id string) (models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.snap.Loans, id, loanID)
	if i < 0 {
		return models.Loan{}, &models.NotFoundError{Resource: "loan", ID: id}
	}
	loan, advanced := calculator.PayInstallment(l.snap.Loans[i])
	if !advanced {
		slog.Debug("Loan already completed", "loan_id", id)
		return l.snap.Loans[i], nil
	}
	snap := l.snap
	snap.Loans = replaced(snap.Loans, i, loan)
	l.commit(ctx, snap, Loans)
	slog.Info("Installment paid", "loan_id", id, "paid_months", loan.PaidMonths, "completed", loan.IsCompleted)
	return loan, nil
}

// DeleteLoan removes a loan unconditionally. Unknown ids change nothing.
func (l *Ledger) DeleteLoan(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	loans, removed := without(l.snap.Loans, id, loanID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Loans = loans
	l.commit(ctx, snap, Loans)
	slog.Info("Loan deleted", "loan_id", id)
	return true
}
