// Package remind builds the daily reminder digest and sends it on a schedule.
package remind

import (
	"fmt"
	"strings"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// Digest is everything the owner should be reminded of on one day.
type Digest struct {
	Date            string                `json:"date"`
	ActiveLoans     []models.Loan         `json:"activeLoans"`
	MonthlyEMI      float64               `json:"monthlyEmi"`
	UnsettledSplits []models.BillSplit    `json:"unsettledSplits"`
	DueDebts        []models.Debt         `json:"dueDebts"`
	PendingShopping []models.ShoppingItem `json:"pendingShopping"`
}

// Build collects the open items of snap as of today.
// A debt is due when it is unsettled and its due date is on or before today.
func Build(snap ledger.Snapshot, today string) Digest {
	d := Digest{
		Date:            today,
		ActiveLoans:     []models.Loan{},
		UnsettledSplits: []models.BillSplit{},
		DueDebts:        []models.Debt{},
		PendingShopping: []models.ShoppingItem{},
	}
	for _, l := range snap.Loans {
		if !l.IsCompleted {
			d.ActiveLoans = append(d.ActiveLoans, l)
		}
	}
	d.MonthlyEMI = calculator.TotalMonthlyEMI(snap.Loans)
	for _, s := range snap.Splits {
		if !s.IsSettled {
			d.UnsettledSplits = append(d.UnsettledSplits, s)
		}
	}
	for _, debt := range snap.Debts {
		// DateLayout sorts lexically.
		if !debt.IsSettled && debt.DueDate != "" && debt.DueDate <= today {
			d.DueDebts = append(d.DueDebts, debt)
		}
	}
	for _, item := range snap.Shopping {
		if !item.IsDone {
			d.PendingShopping = append(d.PendingShopping, item)
		}
	}
	return d
}

// Empty reports whether there is nothing to remind about.
func (d Digest) Empty() bool {
	return len(d.ActiveLoans) == 0 && len(d.UnsettledSplits) == 0 &&
		len(d.DueDebts) == 0 && len(d.PendingShopping) == 0
}

// Subject is the e-mail subject line of the digest.
func (d Digest) Subject() string {
	return "FinTrack reminder for " + d.Date
}

// Text renders the digest as plain text.
func (d Digest) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FinTrack reminder for %s\n", d.Date)
	if d.Empty() {
		b.WriteString("\nNothing due today.\n")
		return b.String()
	}

	if len(d.ActiveLoans) > 0 {
		fmt.Fprintf(&b, "\nLoans (monthly EMI %.2f):\n", d.MonthlyEMI)
		for _, l := range d.ActiveLoans {
			fmt.Fprintf(&b, "  - %s: %d/%d paid, EMI %.2f\n", l.Title, l.PaidMonths, l.DurationMonths, l.EMIAmount)
		}
	}
	if len(d.UnsettledSplits) > 0 {
		b.WriteString("\nUnsettled bills:\n")
		for _, s := range d.UnsettledSplits {
			fmt.Fprintf(&b, "  - %s: %.2f, %.2f per head, paid by %s\n", s.Title, s.TotalAmount, calculator.PerHeadShare(s), s.Payer)
		}
	}
	if len(d.DueDebts) > 0 {
		b.WriteString("\nDue debts:\n")
		for _, debt := range d.DueDebts {
			verb := "owes you"
			if debt.Type == models.Borrowed {
				verb = "is owed by you"
			}
			fmt.Fprintf(&b, "  - %s %s %.2f (due %s)\n", debt.PersonName, verb, debt.Amount, debt.DueDate)
		}
	}
	if len(d.PendingShopping) > 0 {
		b.WriteString("\nShopping list:\n")
		for _, item := range d.PendingShopping {
			fmt.Fprintf(&b, "  - %s (~%.2f)\n", item.Name, item.EstimatedPrice)
		}
	}
	return b.String()
}
