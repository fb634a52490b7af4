package service

import (
	"context"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// WalletService implements the Connect WalletService.
type WalletService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.WalletServiceHandler = (*WalletService)(nil)

// NewWalletService creates a WalletService over l.
func NewWalletService(l *ledger.Ledger) *WalletService {
	return &WalletService{ledger: l}
}

func (s *WalletService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	t, err := s.ledger.AddTransaction(ctx, req.Msg.Transaction)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddTransactionResponse{Transaction: t}), nil
}

func (s *WalletService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return connect.NewResponse(&api.DeleteTransactionResponse{Deleted: s.ledger.DeleteTransaction(ctx, req.Msg.ID)}), nil
}

func (s *WalletService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	month := req.Msg.Month
	if month != "" {
		if _, err := time.Parse(models.MonthLayout, month); err != nil {
			return nil, toConnectError(models.Invalid("month", "must be a YYYY-MM month"))
		}
	}

	resp := &api.ListTransactionsResponse{Transactions: []models.Transaction{}}
	for _, t := range s.ledger.Snapshot().Transactions {
		if month != "" && !strings.HasPrefix(t.Date, month) {
			continue
		}
		if req.Msg.Type != "" && t.Type != req.Msg.Type {
			continue
		}
		resp.Transactions = append(resp.Transactions, t)
		switch t.Type {
		case models.Income:
			resp.TotalIncome += t.Amount
		case models.Expense:
			resp.TotalExpense += t.Amount
		}
	}
	resp.Balance = calculator.CashBalance(resp.Transactions)
	return connect.NewResponse(resp), nil
}

func (s *WalletService) AddShoppingItem(ctx context.Context, req *connect.Request[api.AddShoppingItemRequest]) (*connect.Response[api.AddShoppingItemResponse], error) {
	item, err := s.ledger.AddShoppingItem(ctx, req.Msg.Name, req.Msg.EstimatedPrice)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddShoppingItemResponse{Item: item}), nil
}

// BuyShoppingItem marks the item done and records its expense.
func (s *WalletService) BuyShoppingItem(ctx context.Context, req *connect.Request[api.BuyShoppingItemRequest]) (*connect.Response[api.BuyShoppingItemResponse], error) {
	item, expense, err := s.ledger.BuyShoppingItem(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.BuyShoppingItemResponse{Item: item, Expense: expense}), nil
}

func (s *WalletService) DeleteShoppingItem(ctx context.Context, req *connect.Request[api.DeleteShoppingItemRequest]) (*connect.Response[api.DeleteShoppingItemResponse], error) {
	return connect.NewResponse(&api.DeleteShoppingItemResponse{Deleted: s.ledger.DeleteShoppingItem(ctx, req.Msg.ID)}), nil
}

func (s *WalletService) ListShoppingItems(ctx context.Context, req *connect.Request[api.ListShoppingItemsRequest]) (*connect.Response[api.ListShoppingItemsResponse], error) {
	items := orEmpty(s.ledger.Snapshot().Shopping)
	resp := &api.ListShoppingItemsResponse{Items: items}
	for _, item := range items {
		if !item.IsDone {
			resp.PendingTotal += item.EstimatedPrice
		}
	}
	return connect.NewResponse(resp), nil
}

func (s *WalletService) AddDebt(ctx context.Context, req *connect.Request[api.AddDebtRequest]) (*connect.Response[api.AddDebtResponse], error) {
	d, err := s.ledger.AddDebt(ctx, req.Msg.Debt)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddDebtResponse{Debt: d}), nil
}

func (s *WalletService) ToggleDebt(ctx context.Context, req *connect.Request[api.ToggleDebtRequest]) (*connect.Response[api.ToggleDebtResponse], error) {
	d, err := s.ledger.ToggleDebt(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ToggleDebtResponse{Debt: d}), nil
}

func (s *WalletService) DeleteDebt(ctx context.Context, req *connect.Request[api.DeleteDebtRequest]) (*connect.Response[api.DeleteDebtResponse], error) {
	return connect.NewResponse(&api.DeleteDebtResponse{Deleted: s.ledger.DeleteDebt(ctx, req.Msg.ID)}), nil
}

func (s *WalletService) ListDebts(ctx context.Context, req *connect.Request[api.ListDebtsRequest]) (*connect.Response[api.ListDebtsResponse], error) {
	debts := orEmpty(s.ledger.Snapshot().Debts)
	return connect.NewResponse(&api.ListDebtsResponse{Debts: debts, Totals: calculator.SumDebts(debts)}), nil
}

func (s *WalletService) SetBudget(ctx context.Context, req *connect.Request[api.SetBudgetRequest]) (*connect.Response[api.SetBudgetResponse], error) {
	budgets, err := s.ledger.SetBudget(ctx, req.Msg.Category, req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetBudgetResponse{Budgets: budgets}), nil
}

func (s *WalletService) GetBudgetUsage(ctx context.Context, req *connect.Request[api.GetBudgetUsageRequest]) (*connect.Response[api.GetBudgetUsageResponse], error) {
	month := req.Msg.Month
	if month == "" {
		month = s.ledger.Today()[:len(models.MonthLayout)]
	}
	snap := s.ledger.Snapshot()
	usage, err := calculator.BudgetUsage(snap.Budgets, snap.Transactions, month)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetBudgetUsageResponse{Month: month, Usage: usage}), nil
}

func (s *WalletService) CreateGoal(ctx context.Context, req *connect.Request[api.CreateGoalRequest]) (*connect.Response[api.CreateGoalResponse], error) {
	g, err := s.ledger.CreateGoal(ctx, req.Msg.Name, req.Msg.TargetAmount, req.Msg.Deadline, req.Msg.Icon)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateGoalResponse{Goal: goalView(g)}), nil
}

func (s *WalletService) AddToGoal(ctx context.Context, req *connect.Request[api.AddToGoalRequest]) (*connect.Response[api.AddToGoalResponse], error) {
	g, err := s.ledger.AddToGoal(ctx, req.Msg.ID, req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddToGoalResponse{Goal: goalView(g)}), nil
}

func (s *WalletService) DeleteGoal(ctx context.Context, req *connect.Request[api.DeleteGoalRequest]) (*connect.Response[api.DeleteGoalResponse], error) {
	return connect.NewResponse(&api.DeleteGoalResponse{Deleted: s.ledger.DeleteGoal(ctx, req.Msg.ID)}), nil
}

func (s *WalletService) ListGoals(ctx context.Context, req *connect.Request[api.ListGoalsRequest]) (*connect.Response[api.ListGoalsResponse], error) {
	goals := s.ledger.Snapshot().Goals
	resp := &api.ListGoalsResponse{Goals: make([]api.GoalView, 0, len(goals))}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, goalView(g))
	}
	resp.TotalSaved, resp.TotalTarget = calculator.SumGoals(goals)
	return connect.NewResponse(resp), nil
}

func goalView(g models.Goal) api.GoalView {
	return api.GoalView{Goal: g, Progress: calculator.GoalProgress(g)}
}
