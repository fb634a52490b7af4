package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shohagvaii216/FinTrack/internal/backup"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/storage"
	"github.com/shohagvaii216/FinTrack/internal/storage/sqlite"
)

// failingStore fails every save.
type failingStore struct {
	storage.Store
}

func (failingStore) SaveCollection(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestPersister_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	p := storage.NewPersister(store)
	l := ledger.New()
	l.Subscribe(p.Subscriber())

	m, err := l.AddMember(ctx, "Rafi", 1000)
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if _, err := l.RecordMeal(ctx, m.ID, 2.5, ""); err != nil {
		t.Fatalf("RecordMeal failed: %v", err)
	}
	if _, err := l.CreateSplit(ctx, "Dinner", 900, []string{"A", "B", "C"}); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	names, err := store.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("expected 3 stored collections, got %v", names)
	}

	snap, issues, err := p.Load(ctx, time.Now())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %+v", issues)
	}
	if len(snap.Members) != 1 || snap.Members[0].ID != m.ID {
		t.Errorf("members = %+v", snap.Members)
	}
	if len(snap.Meals) != 1 || snap.Meals[0].Count != 2.5 {
		t.Errorf("meals = %+v", snap.Meals)
	}
	if len(snap.Splits) != 1 || snap.Splits[0].Payer != "A" {
		t.Errorf("splits = %+v", snap.Splits)
	}
	if snap.Loans != nil {
		t.Errorf("never-saved collection should stay empty, got %+v", snap.Loans)
	}
}

func TestPersister_FailuresAreIgnored(t *testing.T) {
	p := storage.NewPersister(failingStore{})
	var failed []ledger.Collection
	p.OnError(func(c ledger.Collection, _ error) { failed = append(failed, c) })

	l := ledger.New()
	l.Subscribe(p.Subscriber())

	if _, err := l.AddShoppingItem(context.Background(), "Milk", 90); err != nil {
		t.Fatalf("command must succeed despite persistence failure: %v", err)
	}
	if len(l.Snapshot().Shopping) != 1 {
		t.Error("state must change despite persistence failure")
	}
	if len(failed) != 1 || failed[0] != ledger.Shopping {
		t.Errorf("failed = %v, want [shopping]", failed)
	}
}

func TestPersister_ExtremeLoanTermsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	p := storage.NewPersister(store)
	var failed []ledger.Collection
	p.OnError(func(c ledger.Collection, _ error) { failed = append(failed, c) })
	l := ledger.New()
	l.Subscribe(p.Subscriber())

	if _, err := l.CreateLoan(ctx, "Mortgage", 100000, 12, 100000, ""); err != nil {
		t.Fatalf("CreateLoan (long term) failed: %v", err)
	}
	if _, err := l.CreateLoan(ctx, "Friend", 100000, 1e-15, 10, ""); err != nil {
		t.Fatalf("CreateLoan (tiny rate) failed: %v", err)
	}
	if _, err := l.CreateLoan(ctx, "Bike", 50000, 9, 24, ""); err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("saves failed for %v", failed)
	}

	snap, _, err := p.Load(ctx, time.Now())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Loans) != 3 {
		t.Fatalf("reloaded %d loans, want 3", len(snap.Loans))
	}
}

func TestPersister_GoalsAndExtrasSurviveRestart(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	p := storage.NewPersister(store)
	l := ledger.New()
	l.Subscribe(p.Subscriber())

	doc := `{"subs": [{"id": "s1", "name": "Netflix"}], "categories": ["Food"]}`
	result, err := backup.Import([]byte(doc), l.Snapshot(), time.Now())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	l.Restore(ctx, result.Snapshot)

	goal, err := l.CreateGoal(ctx, "Laptop", 80000, "", "")
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if _, err := l.AddToGoal(ctx, goal.ID, 5000); err != nil {
		t.Fatalf("AddToGoal failed: %v", err)
	}

	snap, issues, err := p.Load(ctx, time.Now())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %+v", issues)
	}
	if len(snap.Goals) != 1 || snap.Goals[0].CurrentAmount != 5000 {
		t.Errorf("goals = %+v", snap.Goals)
	}
	if len(snap.Extras) != 2 || string(snap.Extras["categories"]) != `["Food"]` {
		t.Errorf("extras = %v", snap.Extras)
	}
}
