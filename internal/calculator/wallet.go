package calculator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// Defaults for the expense synthesized when a shopping item is bought.
const (
	DefaultCurrency  = "BDT"
	ShoppingCategory = "শপিং"
	ShoppingTag      = "শপিং_লিস্ট"
	ShoppingMood     = "🛍️"
)

// NewTransaction fills the defaults of t and validates it.
// A missing date becomes today, a missing currency becomes BDT and a missing
// payment mode becomes Cash.
func NewTransaction(t models.Transaction, today string) (models.Transaction, error) {
	t.ID = uuid.New().String()
	t = TransactionWithDefaults(t, today)
	if err := ValidateTransaction(t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// TransactionWithDefaults trims t and fills its optional fields.
func TransactionWithDefaults(t models.Transaction, today string) models.Transaction {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.PaymentMode == "" {
		t.PaymentMode = models.PaymentCash
	}
	if t.Date == "" {
		t.Date = today
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}

// ValidateTransaction checks a wallet transaction.
func ValidateTransaction(t models.Transaction) error {
	if err := positive("amount", t.Amount); err != nil {
		return err
	}
	if t.Type != models.Income && t.Type != models.Expense {
		return models.Invalid("type", "must be %q or %q", models.Income, models.Expense)
	}
	if t.Category == "" {
		return models.Invalid("category", "must not be empty")
	}
	return validDate("date", t.Date)
}

// CashBalance is total income minus total expense.
func CashBalance(txs []models.Transaction) float64 {
	var balance float64
	for _, t := range txs {
		switch t.Type {
		case models.Income:
			balance += t.Amount
		case models.Expense:
			balance -= t.Amount
		}
	}
	return balance
}

// NewShoppingItem builds a pending shopping-list entry.
func NewShoppingItem(name string, estimatedPrice float64) (models.ShoppingItem, error) {
	item := models.ShoppingItem{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		EstimatedPrice: estimatedPrice,
	}
	if err := ValidateShoppingItem(item); err != nil {
		return models.ShoppingItem{}, err
	}
	return item, nil
}

// ValidateShoppingItem checks a shopping-list entry.
func ValidateShoppingItem(item models.ShoppingItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return models.Invalid("name", "must not be empty")
	}
	return nonNegative("estimatedPrice", item.EstimatedPrice)
}

// PurchaseExpense is the expense recorded when item is bought on date.
func PurchaseExpense(item models.ShoppingItem, date string) models.Transaction {
	return models.Transaction{
		ID:          uuid.New().String(),
		Amount:      item.EstimatedPrice,
		Currency:    DefaultCurrency,
		Type:        models.Expense,
		Category:    ShoppingCategory,
		Date:        date,
		PaymentMode: models.PaymentCash,
		Note:        fmt.Sprintf("কেনা হয়েছে: %s", item.Name),
		Tags:        []string{ShoppingTag},
		Mood:        ShoppingMood,
	}
}

// NewDebt fills the defaults of d and validates it.
func NewDebt(d models.Debt, today string) (models.Debt, error) {
	d.ID = uuid.New().String()
	d.PersonName = strings.TrimSpace(d.PersonName)
	d.Note = strings.TrimSpace(d.Note)
	d.IsSettled = false
	if d.Date == "" {
		d.Date = today
	}
	if err := ValidateDebt(d); err != nil {
		return models.Debt{}, err
	}
	return d, nil
}

// ValidateDebt checks a debt record.
func ValidateDebt(d models.Debt) error {
	if strings.TrimSpace(d.PersonName) == "" {
		return models.Invalid("personName", "must not be empty")
	}
	if err := positive("amount", d.Amount); err != nil {
		return err
	}
	if d.Type != models.Lent && d.Type != models.Borrowed {
		return models.Invalid("type", "must be %q or %q", models.Lent, models.Borrowed)
	}
	if err := validDate("date", d.Date); err != nil {
		return err
	}
	return validDate("dueDate", d.DueDate)
}

// ToggleDebtSettled returns a copy of d with the settled flag flipped.
func ToggleDebtSettled(d models.Debt) models.Debt {
	d.IsSettled = !d.IsSettled
	return d
}

// SumDebts totals the unsettled debts in each direction.
func SumDebts(debts []models.Debt) models.DebtTotals {
	var totals models.DebtTotals
	for _, d := range debts {
		if d.IsSettled {
			continue
		}
		switch d.Type {
		case models.Lent:
			totals.Lent += d.Amount
		case models.Borrowed:
			totals.Borrowed += d.Amount
		}
	}
	return totals
}

// ValidateBudget checks a budget record.
func ValidateBudget(b models.Budget) error {
	if strings.TrimSpace(b.Category) == "" {
		return models.Invalid("category", "must not be empty")
	}
	return nonNegative("limit", b.Limit)
}

// SetBudget returns a new budget list with category's limit inserted or replaced.
func SetBudget(budgets []models.Budget, category string, limit float64) ([]models.Budget, error) {
	b := models.Budget{Category: strings.TrimSpace(category), Limit: limit}
	if err := ValidateBudget(b); err != nil {
		return nil, err
	}
	out := make([]models.Budget, 0, len(budgets)+1)
	replaced := false
	for _, existing := range budgets {
		if existing.Category == b.Category {
			out = append(out, b)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, b)
	}
	return out, nil
}

// BudgetUsage compares each budget with the expenses of month ("YYYY-MM").
// The result is sorted by category.
func BudgetUsage(budgets []models.Budget, txs []models.Transaction, month string) ([]models.BudgetUsage, error) {
	if _, err := time.Parse(models.MonthLayout, month); err != nil {
		return nil, models.Invalid("month", "must be a YYYY-MM month")
	}
	spent := make(map[string]float64)
	for _, t := range txs {
		if t.Type == models.Expense && strings.HasPrefix(t.Date, month) {
			spent[t.Category] += t.Amount
		}
	}

	usage := make([]models.BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		s := spent[b.Category]
		usage = append(usage, models.BudgetUsage{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     s,
			Remaining: b.Limit - s,
			Exceeded:  s > b.Limit,
		})
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Category < usage[j].Category })
	return usage, nil
}
