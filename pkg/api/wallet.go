package api

import "github.com/shohagvaii216/FinTrack/internal/models"

// AddTransactionRequest carries a transaction without its id; the server
// assigns one and fills the defaults.
type AddTransactionRequest struct {
	Transaction models.Transaction `json:"transaction"`
}

type AddTransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	ID string `json:"id"`
}

type DeleteTransactionResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTransactionsRequest filters by month ("2006-01") and type. Empty
// filters match everything.
type ListTransactionsRequest struct {
	Month string                 `json:"month,omitempty"`
	Type  models.TransactionType `json:"type,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	TotalIncome  float64              `json:"totalIncome"`
	TotalExpense float64              `json:"totalExpense"`
	Balance      float64              `json:"balance"`
}

type AddShoppingItemRequest struct {
	Name           string  `json:"name"`
	EstimatedPrice float64 `json:"estimatedPrice"`
}

type AddShoppingItemResponse struct {
	Item models.ShoppingItem `json:"item"`
}

type BuyShoppingItemRequest struct {
	ID string `json:"id"`
}

// BuyShoppingItemResponse carries the recorded expense, or none when the
// item had already been bought.
type BuyShoppingItemResponse struct {
	Item    models.ShoppingItem `json:"item"`
	Expense *models.Transaction `json:"expense,omitempty"`
}

type DeleteShoppingItemRequest struct {
	ID string `json:"id"`
}

type DeleteShoppingItemResponse struct {
	Deleted bool `json:"deleted"`
}

type ListShoppingItemsRequest struct{}

type ListShoppingItemsResponse struct {
	Items        []models.ShoppingItem `json:"items"`
	PendingTotal float64               `json:"pendingTotal"`
}

type AddDebtRequest struct {
	Debt models.Debt `json:"debt"`
}

type AddDebtResponse struct {
	Debt models.Debt `json:"debt"`
}

type ToggleDebtRequest struct {
	ID string `json:"id"`
}

type ToggleDebtResponse struct {
	Debt models.Debt `json:"debt"`
}

type DeleteDebtRequest struct {
	ID string `json:"id"`
}

type DeleteDebtResponse struct {
	Deleted bool `json:"deleted"`
}

type ListDebtsRequest struct{}

type ListDebtsResponse struct {
	Debts  []models.Debt     `json:"debts"`
	Totals models.DebtTotals `json:"totals"`
}

type SetBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

type SetBudgetResponse struct {
	Budgets []models.Budget `json:"budgets"`
}

// GetBudgetUsageRequest defaults Month to the current month.
type GetBudgetUsageRequest struct {
	Month string `json:"month,omitempty"`
}

type GetBudgetUsageResponse struct {
	Month string               `json:"month"`
	Usage []models.BudgetUsage `json:"usage"`
}

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline,omitempty"`
	Icon         string  `json:"icon,omitempty"`
}

// GoalView is a goal with its progress.
type GoalView struct {
	models.Goal
	Progress models.GoalProgress `json:"progress"`
}

type CreateGoalResponse struct {
	Goal GoalView `json:"goal"`
}

type AddToGoalRequest struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

type AddToGoalResponse struct {
	Goal GoalView `json:"goal"`
}

type DeleteGoalRequest struct {
	ID string `json:"id"`
}

type DeleteGoalResponse struct {
	Deleted bool `json:"deleted"`
}

type ListGoalsRequest struct{}

type ListGoalsResponse struct {
	Goals       []GoalView `json:"goals"`
	TotalSaved  float64    `json:"totalSaved"`
	TotalTarget float64    `json:"totalTarget"`
}
