package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/advisor"
	"github.com/shohagvaii216/FinTrack/internal/auth"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/internal/storage"
	"github.com/shohagvaii216/FinTrack/internal/storage/sqlite"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

var testDay = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

// fakeAdvisor returns canned answers, or err for every call when set.
type fakeAdvisor struct {
	err error
}

func (f *fakeAdvisor) ScanReceipt(_ context.Context, image string) (*advisor.ReceiptScan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &advisor.ReceiptScan{Amount: 450, Category: "Food", Note: "Star Kabab"}, nil
}

func (f *fakeAdvisor) ParseSMS(_ context.Context, text string) (*advisor.SMSParse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &advisor.SMSParse{Amount: 1200, Type: models.Income, Provider: "bKash", Date: "2024-05-09"}, nil
}

func (f *fakeAdvisor) ParseVoice(_ context.Context, text string) (*advisor.VoiceCommand, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &advisor.VoiceCommand{Amount: 50, Category: "Food", Note: "চা", Type: models.Expense}, nil
}

func (f *fakeAdvisor) Forecast(_ context.Context, txs []models.Transaction) (*advisor.Forecast, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &advisor.Forecast{NextMonthTotal: float64(len(txs)) * 100, CategoryBreakdown: []advisor.CategoryForecast{}}, nil
}

func (f *fakeAdvisor) Ask(_ context.Context, query string, history []advisor.Turn) (string, error) {
	if f.err != nil {
		return advisor.FallbackAnswer, f.err
	}
	return "সঞ্চয় করুন", nil
}

type testClients struct {
	mess    *apiconnect.MessServiceClient
	split   *apiconnect.SplitServiceClient
	loan    *apiconnect.LoanServiceClient
	wallet  *apiconnect.WalletServiceClient
	tools   *apiconnect.ToolsServiceClient
	backup  *apiconnect.BackupServiceClient
	advisor *apiconnect.AdvisorServiceClient
	auth    *apiconnect.AuthServiceClient
	profile *apiconnect.ProfileServiceClient

	ledger *ledger.Ledger
	store  storage.Store
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T, adv Advisor) *testClients {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "fintrack-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	l := ledger.New(ledger.WithClock(func() time.Time { return testDay }))
	l.Subscribe(storage.NewPersister(store).Subscriber())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewMessServiceHandler(NewMessService(l)))
	mux.Handle(apiconnect.NewSplitServiceHandler(NewSplitService(l)))
	mux.Handle(apiconnect.NewLoanServiceHandler(NewLoanService(l)))
	mux.Handle(apiconnect.NewWalletServiceHandler(NewWalletService(l)))
	mux.Handle(apiconnect.NewToolsServiceHandler(NewToolsService(l)))
	mux.Handle(apiconnect.NewBackupServiceHandler(NewBackupService(l)))
	mux.Handle(apiconnect.NewAdvisorServiceHandler(NewAdvisorService(l, adv, nil)))
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(auth.NewPINAuthenticator(l), jwtManager, l.Locked)))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(l)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testClients{
		mess:    apiconnect.NewMessServiceClient(http.DefaultClient, server.URL),
		split:   apiconnect.NewSplitServiceClient(http.DefaultClient, server.URL),
		loan:    apiconnect.NewLoanServiceClient(http.DefaultClient, server.URL),
		wallet:  apiconnect.NewWalletServiceClient(http.DefaultClient, server.URL),
		tools:   apiconnect.NewToolsServiceClient(http.DefaultClient, server.URL),
		backup:  apiconnect.NewBackupServiceClient(http.DefaultClient, server.URL),
		advisor: apiconnect.NewAdvisorServiceClient(http.DefaultClient, server.URL),
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		profile: apiconnect.NewProfileServiceClient(http.DefaultClient, server.URL),
		ledger:  l,
		store:   store,
	}
}

// logBuffer is an io.Writer that can be read while handlers write to it.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// count reports how many records carry msg.
func (b *logBuffer) count(msg string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Count(b.buf.Bytes(), []byte(`"msg":"`+msg+`"`))
}

// captureLogs routes the default logger to a buffer until the test ends.
func captureLogs(t *testing.T) *logBuffer {
	t.Helper()
	buf := &logBuffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code = %v, want %v (%v)", got, want, err)
	}
}

func TestMessService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	rafi, err := c.mess.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "Rafi", Deposit: 1000}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	sami, err := c.mess.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "Sami", Deposit: 500}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	rafiID, samiID := rafi.Msg.Member.ID, sami.Msg.Member.ID

	if _, err := c.mess.RecordBazaar(ctx, connect.NewRequest(&api.RecordBazaarRequest{MemberID: rafiID, Amount: 600, Item: "Rice"})); err != nil {
		t.Fatalf("RecordBazaar failed: %v", err)
	}
	for _, m := range []struct {
		id    string
		count float64
	}{{rafiID, 2}, {samiID, 3.5}, {samiID, 0.5}} {
		if _, err := c.mess.RecordMeal(ctx, connect.NewRequest(&api.RecordMealRequest{MemberID: m.id, Count: m.count})); err != nil {
			t.Fatalf("RecordMeal failed: %v", err)
		}
	}

	resp, err := c.mess.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	s := resp.Msg.Summary
	if s.TotalMealCount != 6 || math.Abs(s.MealRate-100) > 0.001 {
		t.Errorf("summary = %+v", s)
	}
	if len(s.Members) != 2 || math.Abs(s.Members[0].NetBalance-800) > 0.001 || math.Abs(s.Members[1].NetBalance-100) > 0.001 {
		t.Errorf("members = %+v", s.Members)
	}
	if len(resp.Msg.Meals) != 3 || resp.Msg.Meals[0].Date != "2024-05-10" {
		t.Errorf("meals = %+v", resp.Msg.Meals)
	}

	t.Run("unknown member", func(t *testing.T) {
		_, err := c.mess.RecordMeal(ctx, connect.NewRequest(&api.RecordMealRequest{MemberID: "ghost", Count: 1}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("invalid meal count", func(t *testing.T) {
		_, err := c.mess.RecordMeal(ctx, connect.NewRequest(&api.RecordMealRequest{MemberID: rafiID, Count: 1.3}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("removal keeps history", func(t *testing.T) {
		removed, err := c.mess.RemoveMember(ctx, connect.NewRequest(&api.RemoveMemberRequest{ID: samiID}))
		if err != nil || !removed.Msg.Removed {
			t.Fatalf("RemoveMember = %v, %v", removed, err)
		}
		resp, err := c.mess.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if resp.Msg.Summary.TotalMealCount != 6 || len(resp.Msg.Summary.Members) != 1 {
			t.Errorf("summary after removal = %+v", resp.Msg.Summary)
		}
	})
}

func TestSplitService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	created, err := c.split.CreateSplit(ctx, connect.NewRequest(&api.CreateSplitRequest{
		Title:            "Dinner",
		TotalAmount:      900,
		ParticipantsText: "A, B, , C",
	}))
	if err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	split := created.Msg.Split
	if split.Payer != "A" || len(split.Participants) != 3 || split.PerHeadShare != 300 {
		t.Errorf("split = %+v", split)
	}

	list, err := c.split.ListSplits(ctx, connect.NewRequest(&api.ListSplitsRequest{}))
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(list.Msg.Transfers) != 2 {
		t.Fatalf("transfers = %+v", list.Msg.Transfers)
	}
	var toA float64
	for _, tr := range list.Msg.Transfers {
		if tr.To != "A" {
			t.Errorf("transfer to %q, want A", tr.To)
		}
		toA += tr.Amount
	}
	if math.Abs(toA-600) > 0.01 {
		t.Errorf("total owed to A = %v, want 600", toA)
	}

	toggled, err := c.split.ToggleSettled(ctx, connect.NewRequest(&api.ToggleSettledRequest{ID: split.ID}))
	if err != nil || !toggled.Msg.Split.IsSettled {
		t.Fatalf("ToggleSettled = %v, %v", toggled, err)
	}
	list, err = c.split.ListSplits(ctx, connect.NewRequest(&api.ListSplitsRequest{}))
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(list.Msg.Transfers) != 0 {
		t.Errorf("settled split must not produce transfers: %+v", list.Msg.Transfers)
	}

	t.Run("validation", func(t *testing.T) {
		_, err := c.split.CreateSplit(ctx, connect.NewRequest(&api.CreateSplitRequest{Title: "Cab", TotalAmount: 300}))
		expectCode(t, err, connect.CodeInvalidArgument)
		_, err = c.split.CreateSplit(ctx, connect.NewRequest(&api.CreateSplitRequest{Title: "Cab", TotalAmount: -1, Participants: []string{"A"}}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("toggle unknown", func(t *testing.T) {
		_, err := c.split.ToggleSettled(ctx, connect.NewRequest(&api.ToggleSettledRequest{ID: "nope"}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		first, err := c.split.DeleteSplit(ctx, connect.NewRequest(&api.DeleteSplitRequest{ID: split.ID}))
		if err != nil || !first.Msg.Deleted {
			t.Fatalf("first delete = %v, %v", first, err)
		}
		second, err := c.split.DeleteSplit(ctx, connect.NewRequest(&api.DeleteSplitRequest{ID: split.ID}))
		if err != nil || second.Msg.Deleted {
			t.Errorf("second delete = %v, %v", second, err)
		}
	})
}

func TestLoanService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	bike, err := c.loan.CreateLoan(ctx, connect.NewRequest(&api.CreateLoanRequest{
		Title: "Bike", TotalAmount: 100000, InterestRate: 12, DurationMonths: 12,
	}))
	if err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}
	if math.Abs(bike.Msg.Loan.EMIAmount-8884.88) > 0.01 {
		t.Errorf("EMI = %v, want ~8884.88", bike.Msg.Loan.EMIAmount)
	}
	if bike.Msg.Loan.State != models.LoanActive || bike.Msg.Loan.StartDate != "2024-05-10" {
		t.Errorf("loan = %+v", bike.Msg.Loan)
	}

	phone, err := c.loan.CreateLoan(ctx, connect.NewRequest(&api.CreateLoanRequest{
		Title: "Phone", TotalAmount: 3000, DurationMonths: 3,
	}))
	if err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}
	if phone.Msg.Loan.EMIAmount != 1000 {
		t.Errorf("zero-rate EMI = %v, want 1000", phone.Msg.Loan.EMIAmount)
	}

	var last api.LoanView
	for i := 0; i < 4; i++ {
		resp, err := c.loan.PayInstallment(ctx, connect.NewRequest(&api.PayInstallmentRequest{ID: phone.Msg.Loan.ID}))
		if err != nil {
			t.Fatalf("PayInstallment %d failed: %v", i+1, err)
		}
		last = resp.Msg.Loan
	}
	if last.PaidMonths != 3 || !last.IsCompleted || last.State != models.LoanCompleted || last.RemainingBalance != 0 {
		t.Errorf("after four payments = %+v", last)
	}

	list, err := c.loan.ListLoans(ctx, connect.NewRequest(&api.ListLoansRequest{}))
	if err != nil {
		t.Fatalf("ListLoans failed: %v", err)
	}
	if math.Abs(list.Msg.TotalMonthlyEMI-bike.Msg.Loan.EMIAmount) > 0.001 {
		t.Errorf("completed loans must not count toward EMI: %v", list.Msg.TotalMonthlyEMI)
	}
	if math.Abs(list.Msg.TotalRemaining-12*bike.Msg.Loan.EMIAmount) > 0.01 {
		t.Errorf("remaining = %v", list.Msg.TotalRemaining)
	}

	t.Run("invalid terms", func(t *testing.T) {
		_, err := c.loan.CreateLoan(ctx, connect.NewRequest(&api.CreateLoanRequest{Title: "Bad", TotalAmount: 1000, DurationMonths: 0}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("pay unknown", func(t *testing.T) {
		_, err := c.loan.PayInstallment(ctx, connect.NewRequest(&api.PayInstallmentRequest{ID: "nope"}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestWalletService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	for _, tx := range []models.Transaction{
		{Amount: 50000, Type: models.Income, Category: "Salary"},
		{Amount: 700, Type: models.Expense, Category: "Food"},
		{Amount: 300, Type: models.Expense, Category: "Travel", Date: "2024-04-30"},
	} {
		if _, err := c.wallet.AddTransaction(ctx, connect.NewRequest(&api.AddTransactionRequest{Transaction: tx})); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	may, err := c.wallet.ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{Month: "2024-05"}))
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(may.Msg.Transactions) != 2 || may.Msg.Balance != 49300 || may.Msg.TotalExpense != 700 {
		t.Errorf("May = %+v", may.Msg)
	}

	item, err := c.wallet.AddShoppingItem(ctx, connect.NewRequest(&api.AddShoppingItemRequest{Name: "Oil", EstimatedPrice: 450}))
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	bought, err := c.wallet.BuyShoppingItem(ctx, connect.NewRequest(&api.BuyShoppingItemRequest{ID: item.Msg.Item.ID}))
	if err != nil {
		t.Fatalf("BuyShoppingItem failed: %v", err)
	}
	if !bought.Msg.Item.IsDone || bought.Msg.Expense == nil || bought.Msg.Expense.Amount != 450 {
		t.Errorf("bought = %+v", bought.Msg)
	}
	again, err := c.wallet.BuyShoppingItem(ctx, connect.NewRequest(&api.BuyShoppingItemRequest{ID: item.Msg.Item.ID}))
	if err != nil || again.Msg.Expense != nil {
		t.Errorf("buying twice must not record a second expense: %+v, %v", again, err)
	}

	shopping, err := c.wallet.ListShoppingItems(ctx, connect.NewRequest(&api.ListShoppingItemsRequest{}))
	if err != nil || len(shopping.Msg.Items) != 1 || shopping.Msg.PendingTotal != 0 {
		t.Errorf("shopping = %+v, %v", shopping, err)
	}

	if _, err := c.wallet.SetBudget(ctx, connect.NewRequest(&api.SetBudgetRequest{Category: "Food", Limit: 500})); err != nil {
		t.Fatalf("SetBudget failed: %v", err)
	}
	usage, err := c.wallet.GetBudgetUsage(ctx, connect.NewRequest(&api.GetBudgetUsageRequest{}))
	if err != nil {
		t.Fatalf("GetBudgetUsage failed: %v", err)
	}
	if usage.Msg.Month != "2024-05" || len(usage.Msg.Usage) != 1 || !usage.Msg.Usage[0].Exceeded || usage.Msg.Usage[0].Spent != 700 {
		t.Errorf("usage = %+v", usage.Msg)
	}

	debt, err := c.wallet.AddDebt(ctx, connect.NewRequest(&api.AddDebtRequest{Debt: models.Debt{PersonName: "Karim", Amount: 500, Type: models.Lent}}))
	if err != nil {
		t.Fatalf("AddDebt failed: %v", err)
	}
	debts, err := c.wallet.ListDebts(ctx, connect.NewRequest(&api.ListDebtsRequest{}))
	if err != nil || debts.Msg.Totals.Lent != 500 {
		t.Errorf("debts = %+v, %v", debts, err)
	}
	toggled, err := c.wallet.ToggleDebt(ctx, connect.NewRequest(&api.ToggleDebtRequest{ID: debt.Msg.Debt.ID}))
	if err != nil || !toggled.Msg.Debt.IsSettled {
		t.Errorf("toggled = %+v, %v", toggled, err)
	}

	t.Run("bad month", func(t *testing.T) {
		_, err := c.wallet.ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{Month: "May"}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("invalid transaction", func(t *testing.T) {
		_, err := c.wallet.AddTransaction(ctx, connect.NewRequest(&api.AddTransactionRequest{
			Transaction: models.Transaction{Amount: 0, Type: models.Expense, Category: "Food"},
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestWalletService_Goals(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	created, err := c.wallet.CreateGoal(ctx, connect.NewRequest(&api.CreateGoalRequest{Name: "Laptop", TargetAmount: 1000}))
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	goal := created.Msg.Goal
	if goal.Icon != "🎯" || goal.CurrentAmount != 0 || goal.Progress.Reached {
		t.Errorf("created = %+v", goal)
	}
	if _, err := c.wallet.CreateGoal(ctx, connect.NewRequest(&api.CreateGoalRequest{Name: "Trip", TargetAmount: 4000, Deadline: "2024-12-31"})); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	funded, err := c.wallet.AddToGoal(ctx, connect.NewRequest(&api.AddToGoalRequest{ID: goal.ID, Amount: 1200}))
	if err != nil {
		t.Fatalf("AddToGoal failed: %v", err)
	}
	if funded.Msg.Goal.CurrentAmount != 1200 || !funded.Msg.Goal.Progress.Reached || math.Abs(funded.Msg.Goal.Progress.Percent-120) > 0.001 {
		t.Errorf("funded = %+v", funded.Msg.Goal)
	}

	list, err := c.wallet.ListGoals(ctx, connect.NewRequest(&api.ListGoalsRequest{}))
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(list.Msg.Goals) != 2 || list.Msg.TotalSaved != 1200 || list.Msg.TotalTarget != 5000 {
		t.Errorf("goals = %+v", list.Msg)
	}

	deleted, err := c.wallet.DeleteGoal(ctx, connect.NewRequest(&api.DeleteGoalRequest{ID: goal.ID}))
	if err != nil || !deleted.Msg.Deleted {
		t.Errorf("DeleteGoal = %+v, %v", deleted, err)
	}

	t.Run("unknown goal", func(t *testing.T) {
		_, err := c.wallet.AddToGoal(ctx, connect.NewRequest(&api.AddToGoalRequest{ID: goal.ID, Amount: 10}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("invalid target", func(t *testing.T) {
		_, err := c.wallet.CreateGoal(ctx, connect.NewRequest(&api.CreateGoalRequest{Name: "Car", TargetAmount: -1}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestCommandsAreLoggedOnce(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()
	logs := captureLogs(t)

	if _, err := c.mess.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "Rafi", Deposit: 1000})); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if _, err := c.split.CreateSplit(ctx, connect.NewRequest(&api.CreateSplitRequest{
		Title: "Dinner", TotalAmount: 900, Participants: []string{"A", "B", "C"},
	})); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	for _, msg := range []string{"Member added", "Split created"} {
		if n := logs.count(msg); n != 1 {
			t.Errorf("%q logged %d times, want 1", msg, n)
		}
	}
}

func TestToolsService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	conv, err := c.tools.Convert(ctx, connect.NewRequest(&api.ConvertRequest{Amount: 100, From: "USD", To: "BDT"}))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if conv.Msg.Amount != 12150 || len(conv.Msg.Currencies) != 4 {
		t.Errorf("convert = %+v", conv.Msg)
	}
	_, err = c.tools.Convert(ctx, connect.NewRequest(&api.ConvertRequest{Amount: 1, From: "JPY", To: "BDT"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	female := true
	tax, err := c.tools.IncomeTax(ctx, connect.NewRequest(&api.IncomeTaxRequest{AnnualIncome: 400000, Female: &female}))
	if err != nil {
		t.Fatalf("IncomeTax failed: %v", err)
	}
	if tax.Msg.Breakdown.Tax != 0 {
		t.Errorf("income at the female threshold owes nothing, got %v", tax.Msg.Breakdown.Tax)
	}
	tax, err = c.tools.IncomeTax(ctx, connect.NewRequest(&api.IncomeTaxRequest{AnnualIncome: 450000}))
	if err != nil {
		t.Fatalf("IncomeTax failed: %v", err)
	}
	if tax.Msg.Breakdown.Tax != 5000 {
		t.Errorf("tax = %v, want 5000", tax.Msg.Breakdown.Tax)
	}

	if _, err := c.wallet.AddTransaction(ctx, connect.NewRequest(&api.AddTransactionRequest{
		Transaction: models.Transaction{Amount: 40000, Type: models.Income, Category: "Salary"},
	})); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	zakat, err := c.tools.Zakat(ctx, connect.NewRequest(&api.ZakatRequest{Gold: 60000}))
	if err != nil {
		t.Fatalf("Zakat failed: %v", err)
	}
	if zakat.Msg.Result.Wealth != 100000 || zakat.Msg.Result.Zakat != 2500 {
		t.Errorf("zakat = %+v", zakat.Msg.Result)
	}
}

func TestBackupService(t *testing.T) {
	src := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	if _, err := src.split.CreateSplit(ctx, connect.NewRequest(&api.CreateSplitRequest{Title: "Dinner", TotalAmount: 900, Participants: []string{"A", "B", "C"}})); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	if _, err := src.mess.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "Rafi", Deposit: 1000})); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	exported, err := src.backup.Export(ctx, connect.NewRequest(&api.ExportRequest{}))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := setupTestServer(t, &fakeAdvisor{})
	imported, err := dst.backup.Import(ctx, connect.NewRequest(&api.ImportRequest{Document: exported.Msg.Document}))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported.Msg.Imported["billSplits"] != 1 || imported.Msg.Imported["messMembers"] != 1 || len(imported.Msg.Issues) != 0 {
		t.Errorf("import = %+v", imported.Msg)
	}
	list, err := dst.split.ListSplits(ctx, connect.NewRequest(&api.ListSplitsRequest{}))
	if err != nil || len(list.Msg.Splits) != 1 || list.Msg.Splits[0].Title != "Dinner" {
		t.Errorf("imported splits = %+v, %v", list, err)
	}

	stored, err := dst.store.LoadCollection(ctx, string(ledger.Splits))
	if err != nil || len(stored) == 0 {
		t.Errorf("imported collections must be persisted: %q, %v", stored, err)
	}

	_, err = dst.backup.Import(ctx, connect.NewRequest(&api.ImportRequest{Document: "not json"}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestAdvisorService(t *testing.T) {
	ctx := context.Background()

	t.Run("suggestions are not recorded", func(t *testing.T) {
		c := setupTestServer(t, &fakeAdvisor{})
		resp, err := c.advisor.ScanReceipt(ctx, connect.NewRequest(&api.ScanReceiptRequest{Image: "AAAA"}))
		if err != nil {
			t.Fatalf("ScanReceipt failed: %v", err)
		}
		s := resp.Msg.Suggestion
		if s.Amount != 450 || s.Type != models.Expense || s.Date != "2024-05-10" {
			t.Errorf("suggestion = %+v", s)
		}
		sms, err := c.advisor.ParseSMS(ctx, connect.NewRequest(&api.ParseSMSRequest{Text: "Tk 1200 received"}))
		if err != nil || sms.Msg.Suggestion.PaymentMode != models.PaymentBkash {
			t.Errorf("sms = %+v, %v", sms, err)
		}
		if len(c.ledger.Snapshot().Transactions) != 0 {
			t.Error("advisor must not record transactions")
		}
	})

	t.Run("failure is unavailable", func(t *testing.T) {
		failure := &advisor.ExternalServiceError{Op: "parse_voice", Err: errors.New("timeout")}
		c := setupTestServer(t, &fakeAdvisor{err: failure})
		_, err := c.advisor.ParseVoice(ctx, connect.NewRequest(&api.ParseVoiceRequest{Text: "চা ৫০"}))
		expectCode(t, err, connect.CodeUnavailable)
		_, err = c.advisor.Forecast(ctx, connect.NewRequest(&api.ForecastRequest{}))
		expectCode(t, err, connect.CodeUnavailable)
	})

	t.Run("ask falls back", func(t *testing.T) {
		failure := &advisor.ExternalServiceError{Op: "ask", Err: errors.New("timeout")}
		c := setupTestServer(t, &fakeAdvisor{err: failure})
		resp, err := c.advisor.Ask(ctx, connect.NewRequest(&api.AskRequest{Query: "কিভাবে সঞ্চয় করব?"}))
		if err != nil {
			t.Fatalf("Ask must not fail: %v", err)
		}
		if !resp.Msg.Fallback || resp.Msg.Answer != advisor.FallbackAnswer {
			t.Errorf("ask = %+v", resp.Msg)
		}
	})
}

func TestAuthService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	_, err := c.auth.Unlock(ctx, connect.NewRequest(&api.UnlockRequest{PIN: "1234"}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	_, err = c.auth.SetPIN(ctx, connect.NewRequest(&api.SetPINRequest{PIN: "12ab"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	set, err := c.auth.SetPIN(ctx, connect.NewRequest(&api.SetPINRequest{PIN: "1234"}))
	if err != nil || set.Msg.Token == "" {
		t.Fatalf("SetPIN = %v, %v", set, err)
	}
	if !c.ledger.Locked() {
		t.Fatal("ledger should be locked")
	}

	_, err = c.auth.Unlock(ctx, connect.NewRequest(&api.UnlockRequest{PIN: "0000"}))
	expectCode(t, err, connect.CodeUnauthenticated)

	unlocked, err := c.auth.Unlock(ctx, connect.NewRequest(&api.UnlockRequest{PIN: "1234"}))
	if err != nil || unlocked.Msg.Token == "" || unlocked.Msg.ExpiresAt <= time.Now().Unix() {
		t.Fatalf("Unlock = %v, %v", unlocked, err)
	}

	_, err = c.auth.SetPIN(ctx, connect.NewRequest(&api.SetPINRequest{PIN: "9999"}))
	expectCode(t, err, connect.CodeUnauthenticated)

	change := connect.NewRequest(&api.SetPINRequest{PIN: "9999"})
	change.Header().Set("Authorization", "Bearer "+unlocked.Msg.Token)
	if _, err := c.auth.SetPIN(ctx, change); err != nil {
		t.Fatalf("SetPIN with session failed: %v", err)
	}

	profile, err := c.profile.GetProfile(ctx, connect.NewRequest(&api.GetProfileRequest{}))
	if err != nil || !profile.Msg.Profile.IsPINEnabled || profile.Msg.Profile.PINHash != "" {
		t.Errorf("profile = %+v, %v", profile, err)
	}

	_, err = c.auth.DisablePIN(ctx, connect.NewRequest(&api.DisablePINRequest{PIN: "1234"}))
	expectCode(t, err, connect.CodeUnauthenticated)
	if _, err := c.auth.DisablePIN(ctx, connect.NewRequest(&api.DisablePINRequest{PIN: "9999"})); err != nil {
		t.Fatalf("DisablePIN failed: %v", err)
	}
	if c.ledger.Locked() {
		t.Error("ledger should be unlocked")
	}
}

func TestProfileService(t *testing.T) {
	c := setupTestServer(t, &fakeAdvisor{})
	ctx := context.Background()

	updated, err := c.profile.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{
		Profile: models.Profile{Name: " Owner ", Gender: "female", ReminderTime: "21:30", IsPINEnabled: true, PINHash: "forged"},
	}))
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	p := updated.Msg.Profile
	if p.Name != "Owner" || p.IsPINEnabled || p.PINHash != "" {
		t.Errorf("profile = %+v", p)
	}
	if c.ledger.Locked() {
		t.Error("profile edits must not enable the lock")
	}

	tax, err := c.tools.IncomeTax(ctx, connect.NewRequest(&api.IncomeTaxRequest{AnnualIncome: 400000}))
	if err != nil || tax.Msg.Breakdown.Threshold != 400000 {
		t.Errorf("profile gender should select the threshold: %+v, %v", tax, err)
	}

	_, err = c.profile.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{Profile: models.Profile{ReminderTime: "9pm"}}))
	expectCode(t, err, connect.CodeInvalidArgument)
}
