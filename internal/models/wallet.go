package models

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// PaymentMode is how a transaction was paid.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "Cash"
	PaymentCard   PaymentMode = "Card"
	PaymentBkash  PaymentMode = "Bkash"
	PaymentNagad  PaymentMode = "Nagad"
	PaymentRocket PaymentMode = "Rocket"
	PaymentBank   PaymentMode = "Bank"
)

// Transaction is one entry in the wallet ledger.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	Note        string          `json:"note"`
	Tags        []string        `json:"tags"`
	Mood        string          `json:"mood,omitempty"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
}

// ShoppingItem is an entry on the shopping list.
// Buying it marks IsDone and records an expense of EstimatedPrice.
type ShoppingItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	IsDone         bool    `json:"isDone"`
}

// DebtType says which way the money went.
type DebtType string

const (
	Lent     DebtType = "Lent"
	Borrowed DebtType = "Borrowed"
)

// Debt is money lent to or borrowed from one person.
type Debt struct {
	ID         string   `json:"id"`
	PersonName string   `json:"personName"`
	Amount     float64  `json:"amount"`
	Type       DebtType `json:"type"`
	Date       string   `json:"date"`
	DueDate    string   `json:"dueDate,omitempty"`
	Note       string   `json:"note,omitempty"`
	IsSettled  bool     `json:"isSettled"`
}

// Budget is a monthly spending limit for one expense category.
type Budget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// BudgetUsage compares one budget against a month's expenses.
type BudgetUsage struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Exceeded  bool    `json:"exceeded"`
}

// DebtTotals sums the unsettled debts in each direction.
type DebtTotals struct {
	Lent     float64 `json:"lent"`
	Borrowed float64 `json:"borrowed"`
}

// Goal is a savings target that money is added to over time.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
	Icon          string  `json:"icon,omitempty"`
}

// GoalProgress is how far one goal has come.
type GoalProgress struct {
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Reached   bool    `json:"reached"`
}
