package calculator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// DefaultGoalIcon is used when a goal is created without one.
const DefaultGoalIcon = "🎯"

// NewGoal builds an empty savings goal. The deadline is optional.
func NewGoal(name string, target float64, deadline, icon string) (models.Goal, error) {
	g := models.Goal{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		TargetAmount: target,
		Deadline:     strings.TrimSpace(deadline),
		Icon:         strings.TrimSpace(icon),
	}
	if g.Icon == "" {
		g.Icon = DefaultGoalIcon
	}
	if err := ValidateGoal(g); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

// ValidateGoal checks a savings goal.
func ValidateGoal(g models.Goal) error {
	if strings.TrimSpace(g.Name) == "" {
		return models.Invalid("name", "must not be empty")
	}
	if err := positive("targetAmount", g.TargetAmount); err != nil {
		return err
	}
	if err := nonNegative("currentAmount", g.CurrentAmount); err != nil {
		return err
	}
	return validDate("deadline", g.Deadline)
}

// AddToGoal returns a copy of g with amount saved towards it.
// Saving past the target is allowed.
func AddToGoal(g models.Goal, amount float64) (models.Goal, error) {
	if err := positive("amount", amount); err != nil {
		return models.Goal{}, err
	}
	g.CurrentAmount += amount
	if err := nonNegative("currentAmount", g.CurrentAmount); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

// GoalProgress reports the saved share of g in percent. It is not capped at 100.
func GoalProgress(g models.Goal) models.GoalProgress {
	if g.TargetAmount <= 0 {
		return models.GoalProgress{}
	}
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}
	return models.GoalProgress{
		Percent:   g.CurrentAmount / g.TargetAmount * 100,
		Remaining: remaining,
		Reached:   g.CurrentAmount >= g.TargetAmount,
	}
}

// SumGoals totals the saved and target amounts of goals.
func SumGoals(goals []models.Goal) (saved, target float64) {
	for _, g := range goals {
		saved += g.CurrentAmount
		target += g.TargetAmount
	}
	return saved, target
}
