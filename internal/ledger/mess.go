package ledger

import (
	"context"
	"log/slog"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

func memberID(m models.Member) string      { return m.ID }
func bazaarID(e models.BazaarEntry) string { return e.ID }
func mealID(e models.MealEntry) string     { return e.ID }

// AddMember adds a mess member.
func (l *Ledger) AddMember(ctx context.Context, name string, deposit float64) (models.Member, error) {
	m, err := calculator.NewMember(name, deposit)
	if err != nil {
		return models.Member{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Members = appended(snap.Members, m)
	l.commit(ctx, snap, Members)
	slog.Info("Member added", "member_id", m.ID, "name", m.Name)
	return m, nil
}

// RemoveMember deletes a member. Their bazaar and meal entries stay in place
// as unattributed history. Removing an unknown id changes nothing.
func (l *Ledger) RemoveMember(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	members, removed := without(l.snap.Members, id, memberID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Members = members
	l.commit(ctx, snap, Members)
	slog.Info("Member removed", "member_id", id)
	return true
}

// RecordBazaar records a purchase by an existing member.
// An empty date means today.
func (l *Ledger) RecordBazaar(ctx context.Context, memberID string, amount float64, item, date string) (models.BazaarEntry, error) {
	if date == "" {
		date = l.Today()
	}
	e, err := calculator.NewBazaarEntry(memberID, amount, item, date)
	if err != nil {
		return models.BazaarEntry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireMember(memberID); err != nil {
		return models.BazaarEntry{}, err
	}
	snap := l.snap
	snap.Bazaar = appended(snap.Bazaar, e)
	l.commit(ctx, snap, Bazaar)
	slog.Info("Bazaar recorded", "entry_id", e.ID, "member_id", memberID, "amount", amount)
	return e, nil
}

// DeleteBazaar removes a purchase record. Unknown ids change nothing.
func (l *Ledger) DeleteBazaar(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries, removed := without(l.snap.Bazaar, id, bazaarID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Bazaar = entries
	l.commit(ctx, snap, Bazaar)
	return true
}

// RecordMeal records meals eaten by an existing member.
// An empty date means today.
func (l *Ledger) RecordMeal(ctx context.Context, memberID string, count float64, date string) (models.MealEntry, error) {
	if date == "" {
		date = l.Today()
	}
	e, err := calculator.NewMealEntry(memberID, count, date)
	if err != nil {
		return models.MealEntry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireMember(memberID); err != nil {
		return models.MealEntry{}, err
	}
	snap := l.snap
	snap.Meals = appended(snap.Meals, e)
	l.commit(ctx, snap, Meals)
	slog.Info("Meal recorded", "entry_id", e.ID, "member_id", memberID, "count", count)
	return e, nil
}

// DeleteMeal removes a meal record. Unknown ids change nothing.
func (l *Ledger) DeleteMeal(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries, removed := without(l.snap.Meals, id, mealID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Meals = entries
	l.commit(ctx, snap, Meals)
	return true
}

// requireMember checks the member exists at record time. Callers hold l.mu.
func (l *Ledger) requireMember(id string) error {
	if indexOf(l.snap.Members, id, memberID) < 0 {
		return &models.NotFoundError{Resource: "member", ID: id}
	}
	return nil
}
