// Package ledger owns FinTrack's in-memory state.
//
// A Ledger holds one immutable Snapshot of every collection. Commands validate
// their input, build a new snapshot and publish a Change to each subscriber.
// Published slices are never written to again, so a Snapshot may be read
// freely after it has been handed out.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// Collection names one persisted collection.
type Collection string

const (
	Members      Collection = "members"
	Bazaar       Collection = "bazaar"
	Meals        Collection = "meals"
	Splits       Collection = "splits"
	Loans        Collection = "loans"
	Transactions Collection = "transactions"
	Shopping     Collection = "shopping"
	Debts        Collection = "debts"
	Budgets      Collection = "budgets"
	Profile      Collection = "profile"
	Goals        Collection = "goals"
	Extras       Collection = "extras"
)

// AllCollections lists every collection in load order.
var AllCollections = []Collection{
	Profile, Members, Bazaar, Meals, Splits, Loans, Transactions, Shopping, Debts, Budgets, Goals, Extras,
}

// Snapshot is the complete state at one point in time.
type Snapshot struct {
	Profile      models.Profile
	Members      []models.Member
	Bazaar       []models.BazaarEntry
	Meals        []models.MealEntry
	Splits       []models.BillSplit
	Loans        []models.Loan
	Transactions []models.Transaction
	Shopping     []models.ShoppingItem
	Debts        []models.Debt
	Budgets      []models.Budget
	Goals        []models.Goal

	// Extras holds backup collections that are kept but not interpreted
	// (subscriptions, investments, ...), keyed by document key. Each value
	// is a JSON array.
	Extras map[string]json.RawMessage
}

// Payload returns the value stored under c. Slices are never nil.
func (s Snapshot) Payload(c Collection) any {
	switch c {
	case Profile:
		return s.Profile
	case Members:
		return orEmpty(s.Members)
	case Bazaar:
		return orEmpty(s.Bazaar)
	case Meals:
		return orEmpty(s.Meals)
	case Splits:
		return orEmpty(s.Splits)
	case Loans:
		return orEmpty(s.Loans)
	case Transactions:
		return orEmpty(s.Transactions)
	case Shopping:
		return orEmpty(s.Shopping)
	case Debts:
		return orEmpty(s.Debts)
	case Budgets:
		return orEmpty(s.Budgets)
	case Goals:
		return orEmpty(s.Goals)
	case Extras:
		if s.Extras == nil {
			return map[string]json.RawMessage{}
		}
		return s.Extras
	}
	return nil
}

// Change describes one committed command.
type Change struct {
	Collections []Collection
	Snapshot    Snapshot
}

// Subscriber receives every Change, synchronously and in subscription order.
// Subscribers must not call back into the Ledger.
type Subscriber func(ctx context.Context, change Change)

// Ledger is the single writer of FinTrack state.
type Ledger struct {
	mu      sync.Mutex
	snap    Snapshot
	version uint64
	subs    []Subscriber
	now     func() time.Time

	summaryMu      sync.Mutex
	summaryVersion uint64
	summary        *models.MessSummary
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe registers s for all future changes.
func (l *Ledger) Subscribe(s Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, s)
}

// Snapshot returns the current state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Now reads the ledger clock.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Today is the current calendar day in DateLayout.
func (l *Ledger) Today() string {
	return l.now().Format(models.DateLayout)
}

// Apply runs fn on the current state under the write lock and commits the
// snapshot it returns. Only the collections fn reports are published; when
// it reports none, or fails, nothing changes. fn must not call the Ledger.
func (l *Ledger) Apply(ctx context.Context, fn func(Snapshot) (Snapshot, []Collection, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap, changed, err := fn(l.snap)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		return nil
	}
	l.commit(ctx, snap, changed...)
	return nil
}

// Restore replaces the whole state and publishes every collection.
func (l *Ledger) Restore(ctx context.Context, snap Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.commit(ctx, snap, AllCollections...)
	slog.Info("Ledger restored",
		"members", len(snap.Members),
		"splits", len(snap.Splits),
		"loans", len(snap.Loans),
		"transactions", len(snap.Transactions),
		"goals", len(snap.Goals),
	)
}

// commit swaps in snap and notifies subscribers. Callers hold l.mu.
func (l *Ledger) commit(ctx context.Context, snap Snapshot, changed ...Collection) {
	l.snap = snap
	l.version++
	change := Change{Collections: changed, Snapshot: snap}
	for _, s := range l.subs {
		s(ctx, change)
	}
}

// MessSummary returns the derived mess view, memoized per state version.
func (l *Ledger) MessSummary() models.MessSummary {
	l.mu.Lock()
	snap, version := l.snap, l.version
	l.mu.Unlock()

	l.summaryMu.Lock()
	defer l.summaryMu.Unlock()
	if l.summary == nil || l.summaryVersion != version {
		s := calculator.MealLedger(snap.Members, snap.Bazaar, snap.Meals)
		l.summary = &s
		l.summaryVersion = version
	}
	return *l.summary
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// without returns a copy of items lacking the element with id.
// It reports whether anything was removed.
func without[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if idOf(it) == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// replaced returns a copy of items with the element at i set to v.
func replaced[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

// appended returns a copy of items with v added at the end.
func appended[T any](items []T, v ...T) []T {
	out := make([]T, 0, len(items)+len(v))
	out = append(out, items...)
	return append(out, v...)
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}
