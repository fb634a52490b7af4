package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// WalletServiceName is the fully-qualified name of the WalletService.
const WalletServiceName = "fintrack.v1.WalletService"

// Procedure paths of the WalletService.
const (
	WalletServiceAddTransactionProcedure     = "/" + WalletServiceName + "/AddTransaction"
	WalletServiceDeleteTransactionProcedure  = "/" + WalletServiceName + "/DeleteTransaction"
	WalletServiceListTransactionsProcedure   = "/" + WalletServiceName + "/ListTransactions"
	WalletServiceAddShoppingItemProcedure    = "/" + WalletServiceName + "/AddShoppingItem"
	WalletServiceBuyShoppingItemProcedure    = "/" + WalletServiceName + "/BuyShoppingItem"
	WalletServiceDeleteShoppingItemProcedure = "/" + WalletServiceName + "/DeleteShoppingItem"
	WalletServiceListShoppingItemsProcedure  = "/" + WalletServiceName + "/ListShoppingItems"
	WalletServiceAddDebtProcedure            = "/" + WalletServiceName + "/AddDebt"
	WalletServiceToggleDebtProcedure         = "/" + WalletServiceName + "/ToggleDebt"
	WalletServiceDeleteDebtProcedure         = "/" + WalletServiceName + "/DeleteDebt"
	WalletServiceListDebtsProcedure          = "/" + WalletServiceName + "/ListDebts"
	WalletServiceSetBudgetProcedure          = "/" + WalletServiceName + "/SetBudget"
	WalletServiceGetBudgetUsageProcedure     = "/" + WalletServiceName + "/GetBudgetUsage"
	WalletServiceCreateGoalProcedure         = "/" + WalletServiceName + "/CreateGoal"
	WalletServiceAddToGoalProcedure          = "/" + WalletServiceName + "/AddToGoal"
	WalletServiceDeleteGoalProcedure         = "/" + WalletServiceName + "/DeleteGoal"
	WalletServiceListGoalsProcedure          = "/" + WalletServiceName + "/ListGoals"
)

// WalletServiceHandler is implemented by the server side of the WalletService.
// WalletService covers transactions, the shopping list, debts, budgets and
// savings goals.
type WalletServiceHandler interface {
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	AddShoppingItem(context.Context, *connect.Request[api.AddShoppingItemRequest]) (*connect.Response[api.AddShoppingItemResponse], error)
	BuyShoppingItem(context.Context, *connect.Request[api.BuyShoppingItemRequest]) (*connect.Response[api.BuyShoppingItemResponse], error)
	DeleteShoppingItem(context.Context, *connect.Request[api.DeleteShoppingItemRequest]) (*connect.Response[api.DeleteShoppingItemResponse], error)
	ListShoppingItems(context.Context, *connect.Request[api.ListShoppingItemsRequest]) (*connect.Response[api.ListShoppingItemsResponse], error)
	AddDebt(context.Context, *connect.Request[api.AddDebtRequest]) (*connect.Response[api.AddDebtResponse], error)
	ToggleDebt(context.Context, *connect.Request[api.ToggleDebtRequest]) (*connect.Response[api.ToggleDebtResponse], error)
	DeleteDebt(context.Context, *connect.Request[api.DeleteDebtRequest]) (*connect.Response[api.DeleteDebtResponse], error)
	ListDebts(context.Context, *connect.Request[api.ListDebtsRequest]) (*connect.Response[api.ListDebtsResponse], error)
	SetBudget(context.Context, *connect.Request[api.SetBudgetRequest]) (*connect.Response[api.SetBudgetResponse], error)
	GetBudgetUsage(context.Context, *connect.Request[api.GetBudgetUsageRequest]) (*connect.Response[api.GetBudgetUsageResponse], error)
	CreateGoal(context.Context, *connect.Request[api.CreateGoalRequest]) (*connect.Response[api.CreateGoalResponse], error)
	AddToGoal(context.Context, *connect.Request[api.AddToGoalRequest]) (*connect.Response[api.AddToGoalResponse], error)
	DeleteGoal(context.Context, *connect.Request[api.DeleteGoalRequest]) (*connect.Response[api.DeleteGoalResponse], error)
	ListGoals(context.Context, *connect.Request[api.ListGoalsRequest]) (*connect.Response[api.ListGoalsResponse], error)
}

// NewWalletServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewWalletServiceHandler(svc WalletServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, WalletServiceAddTransactionProcedure, svc.AddTransaction, opts)
	handle(mux, WalletServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts)
	handle(mux, WalletServiceListTransactionsProcedure, svc.ListTransactions, opts)
	handle(mux, WalletServiceAddShoppingItemProcedure, svc.AddShoppingItem, opts)
	handle(mux, WalletServiceBuyShoppingItemProcedure, svc.BuyShoppingItem, opts)
	handle(mux, WalletServiceDeleteShoppingItemProcedure, svc.DeleteShoppingItem, opts)
	handle(mux, WalletServiceListShoppingItemsProcedure, svc.ListShoppingItems, opts)
	handle(mux, WalletServiceAddDebtProcedure, svc.AddDebt, opts)
	handle(mux, WalletServiceToggleDebtProcedure, svc.ToggleDebt, opts)
	handle(mux, WalletServiceDeleteDebtProcedure, svc.DeleteDebt, opts)
	handle(mux, WalletServiceListDebtsProcedure, svc.ListDebts, opts)
	handle(mux, WalletServiceSetBudgetProcedure, svc.SetBudget, opts)
	handle(mux, WalletServiceGetBudgetUsageProcedure, svc.GetBudgetUsage, opts)
	handle(mux, WalletServiceCreateGoalProcedure, svc.CreateGoal, opts)
	handle(mux, WalletServiceAddToGoalProcedure, svc.AddToGoal, opts)
	handle(mux, WalletServiceDeleteGoalProcedure, svc.DeleteGoal, opts)
	handle(mux, WalletServiceListGoalsProcedure, svc.ListGoals, opts)
	return "/" + WalletServiceName + "/", mux
}

// WalletServiceClient calls a remote WalletService.
type WalletServiceClient struct {
	addTransaction     *connect.Client[api.AddTransactionRequest, api.AddTransactionResponse]
	deleteTransaction  *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	listTransactions   *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	addShoppingItem    *connect.Client[api.AddShoppingItemRequest, api.AddShoppingItemResponse]
	buyShoppingItem    *connect.Client[api.BuyShoppingItemRequest, api.BuyShoppingItemResponse]
	deleteShoppingItem *connect.Client[api.DeleteShoppingItemRequest, api.DeleteShoppingItemResponse]
	listShoppingItems  *connect.Client[api.ListShoppingItemsRequest, api.ListShoppingItemsResponse]
	addDebt            *connect.Client[api.AddDebtRequest, api.AddDebtResponse]
	toggleDebt         *connect.Client[api.ToggleDebtRequest, api.ToggleDebtResponse]
	deleteDebt         *connect.Client[api.DeleteDebtRequest, api.DeleteDebtResponse]
	listDebts          *connect.Client[api.ListDebtsRequest, api.ListDebtsResponse]
	setBudget          *connect.Client[api.SetBudgetRequest, api.SetBudgetResponse]
	getBudgetUsage     *connect.Client[api.GetBudgetUsageRequest, api.GetBudgetUsageResponse]
	createGoal         *connect.Client[api.CreateGoalRequest, api.CreateGoalResponse]
	addToGoal          *connect.Client[api.AddToGoalRequest, api.AddToGoalResponse]
	deleteGoal         *connect.Client[api.DeleteGoalRequest, api.DeleteGoalResponse]
	listGoals          *connect.Client[api.ListGoalsRequest, api.ListGoalsResponse]
}

// NewWalletServiceClient creates a client for the WalletService served at baseURL.
func NewWalletServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *WalletServiceClient {
	opts = clientOptions(opts)
	return &WalletServiceClient{
		addTransaction:     newClient[api.AddTransactionRequest, api.AddTransactionResponse](httpClient, baseURL, WalletServiceAddTransactionProcedure, opts),
		deleteTransaction:  newClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL, WalletServiceDeleteTransactionProcedure, opts),
		listTransactions:   newClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL, WalletServiceListTransactionsProcedure, opts),
		addShoppingItem:    newClient[api.AddShoppingItemRequest, api.AddShoppingItemResponse](httpClient, baseURL, WalletServiceAddShoppingItemProcedure, opts),
		buyShoppingItem:    newClient[api.BuyShoppingItemRequest, api.BuyShoppingItemResponse](httpClient, baseURL, WalletServiceBuyShoppingItemProcedure, opts),
		deleteShoppingItem: newClient[api.DeleteShoppingItemRequest, api.DeleteShoppingItemResponse](httpClient, baseURL, WalletServiceDeleteShoppingItemProcedure, opts),
		listShoppingItems:  newClient[api.ListShoppingItemsRequest, api.ListShoppingItemsResponse](httpClient, baseURL, WalletServiceListShoppingItemsProcedure, opts),
		addDebt:            newClient[api.AddDebtRequest, api.AddDebtResponse](httpClient, baseURL, WalletServiceAddDebtProcedure, opts),
		toggleDebt:         newClient[api.ToggleDebtRequest, api.ToggleDebtResponse](httpClient, baseURL, WalletServiceToggleDebtProcedure, opts),
		deleteDebt:         newClient[api.DeleteDebtRequest, api.DeleteDebtResponse](httpClient, baseURL, WalletServiceDeleteDebtProcedure, opts),
		listDebts:          newClient[api.ListDebtsRequest, api.ListDebtsResponse](httpClient, baseURL, WalletServiceListDebtsProcedure, opts),
		setBudget:          newClient[api.SetBudgetRequest, api.SetBudgetResponse](httpClient, baseURL, WalletServiceSetBudgetProcedure, opts),
		getBudgetUsage:     newClient[api.GetBudgetUsageRequest, api.GetBudgetUsageResponse](httpClient, baseURL, WalletServiceGetBudgetUsageProcedure, opts),
		createGoal:         newClient[api.CreateGoalRequest, api.CreateGoalResponse](httpClient, baseURL, WalletServiceCreateGoalProcedure, opts),
		addToGoal:          newClient[api.AddToGoalRequest, api.AddToGoalResponse](httpClient, baseURL, WalletServiceAddToGoalProcedure, opts),
		deleteGoal:         newClient[api.DeleteGoalRequest, api.DeleteGoalResponse](httpClient, baseURL, WalletServiceDeleteGoalProcedure, opts),
		listGoals:          newClient[api.ListGoalsRequest, api.ListGoalsResponse](httpClient, baseURL, WalletServiceListGoalsProcedure, opts),
	}
}

func (c *WalletServiceClient) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

func (c *WalletServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *WalletServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *WalletServiceClient) AddShoppingItem(ctx context.Context, req *connect.Request[api.AddShoppingItemRequest]) (*connect.Response[api.AddShoppingItemResponse], error) {
	return c.addShoppingItem.CallUnary(ctx, req)
}

func (c *WalletServiceClient) BuyShoppingItem(ctx context.Context, req *connect.Request[api.BuyShoppingItemRequest]) (*connect.Response[api.BuyShoppingItemResponse], error) {
	return c.buyShoppingItem.CallUnary(ctx, req)
}

func (c *WalletServiceClient) DeleteShoppingItem(ctx context.Context, req *connect.Request[api.DeleteShoppingItemRequest]) (*connect.Response[api.DeleteShoppingItemResponse], error) {
	return c.deleteShoppingItem.CallUnary(ctx, req)
}

func (c *WalletServiceClient) ListShoppingItems(ctx context.Context, req *connect.Request[api.ListShoppingItemsRequest]) (*connect.Response[api.ListShoppingItemsResponse], error) {
	return c.listShoppingItems.CallUnary(ctx, req)
}

func (c *WalletServiceClient) AddDebt(ctx context.Context, req *connect.Request[api.AddDebtRequest]) (*connect.Response[api.AddDebtResponse], error) {
	return c.addDebt.CallUnary(ctx, req)
}

func (c *WalletServiceClient) ToggleDebt(ctx context.Context, req *connect.Request[api.ToggleDebtRequest]) (*connect.Response[api.ToggleDebtResponse], error) {
	return c.toggleDebt.CallUnary(ctx, req)
}

func (c *WalletServiceClient) DeleteDebt(ctx context.Context, req *connect.Request[api.DeleteDebtRequest]) (*connect.Response[api.DeleteDebtResponse], error) {
	return c.deleteDebt.CallUnary(ctx, req)
}

func (c *WalletServiceClient) ListDebts(ctx context.Context, req *connect.Request[api.ListDebtsRequest]) (*connect.Response[api.ListDebtsResponse], error) {
	return c.listDebts.CallUnary(ctx, req)
}

func (c *WalletServiceClient) SetBudget(ctx context.Context, req *connect.Request[api.SetBudgetRequest]) (*connect.Response[api.SetBudgetResponse], error) {
	return c.setBudget.CallUnary(ctx, req)
}

func (c *WalletServiceClient) GetBudgetUsage(ctx context.Context, req *connect.Request[api.GetBudgetUsageRequest]) (*connect.Response[api.GetBudgetUsageResponse], error) {
	return c.getBudgetUsage.CallUnary(ctx, req)
}

func (c *WalletServiceClient) CreateGoal(ctx context.Context, req *connect.Request[api.CreateGoalRequest]) (*connect.Response[api.CreateGoalResponse], error) {
	return c.createGoal.CallUnary(ctx, req)
}

func (c *WalletServiceClient) AddToGoal(ctx context.Context, req *connect.Request[api.AddToGoalRequest]) (*connect.Response[api.AddToGoalResponse], error) {
	return c.addToGoal.CallUnary(ctx, req)
}

func (c *WalletServiceClient) DeleteGoal(ctx context.Context, req *connect.Request[api.DeleteGoalRequest]) (*connect.Response[api.DeleteGoalResponse], error) {
	return c.deleteGoal.CallUnary(ctx, req)
}

func (c *WalletServiceClient) ListGoals(ctx context.Context, req *connect.Request[api.ListGoalsRequest]) (*connect.Response[api.ListGoalsResponse], error) {
	return c.listGoals.CallUnary(ctx, req)
}
