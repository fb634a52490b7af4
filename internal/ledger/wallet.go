package ledger

import (
	"context"
	"log/slog"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

func transactionID(t models.Transaction) string { return t.ID }
func shoppingID(s models.ShoppingItem) string   { return s.ID }
func debtID(d models.Debt) string               { return d.ID }

// AddTransaction records an income or expense.
func (l *Ledger) AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	t, err := calculator.NewTransaction(t, l.Today())
	if err != nil {
		return models.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Transactions = appended(snap.Transactions, t)
	l.commit(ctx, snap, Transactions)
	slog.Info("Transaction added", "transaction_id", t.ID, "type", t.Type, "amount", t.Amount)
	return t, nil
}

// DeleteTransaction removes a transaction. Unknown ids change nothing.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	txs, removed := without(l.snap.Transactions, id, transactionID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Transactions = txs
	l.commit(ctx, snap, Transactions)
	return true
}

// AddShoppingItem puts an item on the shopping list.
func (l *Ledger) AddShoppingItem(ctx context.Context, name string, estimatedPrice float64) (models.ShoppingItem, error) {
	item, err := calculator.NewShoppingItem(name, estimatedPrice)
	if err != nil {
		return models.ShoppingItem{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Shopping = appended(snap.Shopping, item)
	l.commit(ctx, snap, Shopping)
	return item, nil
}

// BuyShoppingItem marks an item done and records its expense, in one change.
// Buying an item that is already done returns it with a nil expense.
func (l *Ledger) BuyShoppingItem(ctx context.Context, id string) (models.ShoppingItem, *models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.snap.Shopping, id, shoppingID)
	if i < 0 {
		return models.ShoppingItem{}, nil, &models.NotFoundError{Resource: "shopping item", ID: id}
	}
	item := l.snap.Shopping[i]
	if item.IsDone {
		return item, nil, nil
	}
	item.IsDone = true
	expense := calculator.PurchaseExpense(item, l.Today())

	snap := l.snap
	snap.Shopping = replaced(snap.Shopping, i, item)
	snap.Transactions = appended(snap.Transactions, expense)
	l.commit(ctx, snap, Shopping, Transactions)
	slog.Info("Shopping item bought", "item_id", id, "transaction_id", expense.ID, "amount", expense.Amount)
	return item, &expense, nil
}

// DeleteShoppingItem removes an item. Unknown ids change nothing.
func (l *Ledger) DeleteShoppingItem(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	items, removed := without(l.snap.Shopping, id, shoppingID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Shopping = items
	l.commit(ctx, snap, Shopping)
	return true
}

// AddDebt records money lent or borrowed.
func (l *Ledger) AddDebt(ctx context.Context, d models.Debt) (models.Debt, error) {
	d, err := calculator.NewDebt(d, l.Today())
	if err != nil {
		return models.Debt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snap
	snap.Debts = appended(snap.Debts, d)
	l.commit(ctx, snap, Debts)
	slog.Info("Debt added", "debt_id", d.ID, "type", d.Type, "amount", d.Amount)
	return d, nil
}

// ToggleDebt flips the settled flag of a debt.
func (l *Ledger) ToggleDebt(ctx context.Context, id string) (models.Debt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.snap.Debts, id, debtID)
	if i < 0 {
		return models.Debt{}, &models.NotFoundError{Resource: "debt", ID: id}
	}
	d := calculator.ToggleDebtSettled(l.snap.Debts[i])
	snap := l.snap
	snap.Debts = replaced(snap.Debts, i, d)
	l.commit(ctx, snap, Debts)
	return d, nil
}

// DeleteDebt removes a debt. Unknown ids change nothing.
func (l *Ledger) DeleteDebt(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	debts, removed := without(l.snap.Debts, id, debtID)
	if !removed {
		return false
	}
	snap := l.snap
	snap.Debts = debts
	l.commit(ctx, snap, Debts)
	return true
}

// SetBudget inserts or replaces the limit of one category.
func (l *Ledger) SetBudget(ctx context.Context, category string, limit float64) ([]models.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	budgets, err := calculator.SetBudget(l.snap.Budgets, category, limit)
	if err != nil {
		return nil, err
	}
	snap := l.snap
	snap.Budgets = budgets
	l.commit(ctx, snap, Budgets)
	return budgets, nil
}
