package ledger

import (
	"context"
	"log/slog"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

func goalID(g models.Goal) string { return g.ID }

// CreateGoal starts a savings goal with nothing saved.
func (l *Ledger) CreateGoal(ctx context.Context, name string, target float64, deadline, icon string) (models.Goal, error) {
	g, err := calculator.NewGoal(name, target, deadline, icon)
	if err != nil {
		return models.Goal{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Goals = appended(snap.Goals, g)
	l.commit(ctx, snap, Goals)
	slog.Info("Goal created", "goal_id", g.ID, "target", g.TargetAmount)
	return g, nil
}

// AddToGoal saves amount towards a goal.
func (l *Ledger) AddToGoal(ctx context.Context, id string, amount float64) (models.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.snap.Goals, id, goalID)
	if i < 0 {
		return models.Goal{}, &models.NotFoundError{Resource: "goal", ID: id}
	}
	g, err := calculator.AddToGoal(l.snap.Goals[i], amount)
	if err != nil {
		return models.Goal{}, err
	}
	snap := l.snap
	snap.Goals = replaced(snap.Goals, i, g)
	l.commit(ctx, snap, Goals)
	slog.Debug("Goal funded", "goal_id", id, "amount", amount, "current", g.CurrentAmount)
	return g, nil
}

// DeleteGoal removes a goal. Unknown ids change nothing.
func (l *Ledger) DeleteGoal(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	goals, removed := without(l.snap.Goals, id, goalID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Goals = goals
	l.commit(ctx, snap, Goals)
	return true
}
