package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shohagvaii216/FinTrack/internal/backup"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// Persister writes ledger changes to a Store.
type Persister struct {
	store   Store
	onError func(collection ledger.Collection, err error)
}

// NewPersister creates a Persister backed by store.
func NewPersister(store Store) *Persister {
	return &Persister{store: store}
}

// OnError registers a hook called for every failed save, after it is logged.
func (p *Persister) OnError(fn func(collection ledger.Collection, err error)) {
	p.onError = fn
}

// Subscriber returns the ledger subscriber that saves each changed collection.
// Save failures are logged and otherwise ignored; the command that caused
// them has already succeeded.
func (p *Persister) Subscriber() ledger.Subscriber {
	return func(ctx context.Context, change ledger.Change) {
		for _, c := range change.Collections {
			if err := p.save(ctx, c, change.Snapshot); err != nil {
				slog.Error("Failed to persist collection", "collection", c, "error", err)
				if p.onError != nil {
					p.onError(c, err)
				}
			}
		}
	}
}

func (p *Persister) save(ctx context.Context, c ledger.Collection, snap ledger.Snapshot) error {
	data, err := json.Marshal(snap.Payload(c))
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	return p.store.SaveCollection(ctx, string(c), data)
}

// Load reads every collection from the store. Absent collections start empty.
// A collection that cannot be decoded is logged and left empty.
func (p *Persister) Load(ctx context.Context, now time.Time) (ledger.Snapshot, []backup.Issue, error) {
	var (
		snap   ledger.Snapshot
		issues []backup.Issue
	)
	today := now.Format(models.DateLayout)
	for _, c := range ledger.AllCollections {
		raw, err := p.store.LoadCollection(ctx, string(c))
		if err != nil {
			return ledger.Snapshot{}, nil, fmt.Errorf("failed to load %s: %w", c, err)
		}
		found, err := backup.DecodeCollection(&snap, c, raw, today)
		if err != nil {
			slog.Warn("Discarding unreadable collection", "collection", c, "error", err)
			continue
		}
		issues = append(issues, found...)
	}
	return snap, issues, nil
}
