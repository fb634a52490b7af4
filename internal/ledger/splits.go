package ledger

import (
	"context"
	"log/slog"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

func splitID(s models.BillSplit) string { return s.ID }

// CreateSplit records a new unsettled bill split dated today.
func (l *Ledger) CreateSplit(ctx context.Context, title string, totalAmount float64, participants []string) (models.BillSplit, error) {
	s, err := calculator.NewBillSplit(title, totalAmount, participants, l.Today())
	if err != nil {
		return models.BillSplit{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Splits = appended(snap.Splits, s)
	l.commit(ctx, snap, Splits)
	slog.Info("Split created", "split_id", s.ID, "total", s.TotalAmount, "participants", len(s.Participants))
	return s, nil
}

// ToggleSettled flips the settled flag of a split.
func (l *Ledger) ToggleSettled(ctx context.Context, id string) (models.BillSplit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.snap.Splits, id, splitID)
	if i < 0 {
		return models.BillSplit{}, &models.NotFoundError{Resource: "split", ID: id}
	}
	s := calculator.ToggleSettled(l.snap.Splits[i])
	snap := l.snap
	snap.Splits = replaced(snap.Splits, i, s)
	l.commit(ctx, snap, Splits)
	slog.Info("Split toggled", "split_id", id, "settled", s.IsSettled)
	return s, nil
}

// DeleteSplit removes a split. Unknown ids change nothing.
func (l *Ledger) DeleteSplit(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	splits, removed := without(l.snap.Splits, id, splitID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Splits = splits
	l.commit(ctx, snap, Splits)
	slog.Info("Split deleted", "split_id", id)
	return true
}
