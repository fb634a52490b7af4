package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// LoanService implements the Connect LoanService.
type LoanService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.LoanServiceHandler = (*LoanService)(nil)

// NewLoanService creates a LoanService over l.
func NewLoanService(l *ledger.Ledger) *LoanService {
	return &LoanService{ledger: l}
}

func loanView(l models.Loan) api.LoanView {
	return api.LoanView{
		Loan:             l,
		RemainingBalance: calculator.RemainingBalance(l),
		Progress:         calculator.Progress(l),
		State:            l.State(),
	}
}

func (s *LoanService) CreateLoan(ctx context.Context, req *connect.Request[api.CreateLoanRequest]) (*connect.Response[api.CreateLoanResponse], error) {
	m := req.Msg
	loan, err := s.ledger.CreateLoan(ctx, m.Title, m.TotalAmount, m.InterestRate, m.DurationMonths, m.StartDate)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateLoanResponse{Loan: loanView(loan)}), nil
}

// PayInstallment on a completed loan returns it unchanged.
func (s *LoanService) PayInstallment(ctx context.Context, req *connect.Request[api.PayInstallmentRequest]) (*connect.Response[api.PayInstallmentResponse], error) {
	loan, err := s.ledger.PayInstallment(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PayInstallmentResponse{Loan: loanView(loan)}), nil
}

func (s *LoanService) DeleteLoan(ctx context.Context, req *connect.Request[api.DeleteLoanRequest]) (*connect.Response[api.DeleteLoanResponse], error) {
	return connect.NewResponse(&api.DeleteLoanResponse{Deleted: s.ledger.DeleteLoan(ctx, req.Msg.ID)}), nil
}

func (s *LoanService) ListLoans(ctx context.Context, req *connect.Request[api.ListLoansRequest]) (*connect.Response[api.ListLoansResponse], error) {
	loans := s.ledger.Snapshot().Loans
	resp := &api.ListLoansResponse{
		Loans:           make([]api.LoanView, len(loans)),
		TotalMonthlyEMI: calculator.TotalMonthlyEMI(loans),
	}
	for i, l := range loans {
		resp.Loans[i] = loanView(l)
		resp.TotalRemaining += resp.Loans[i].RemainingBalance
	}
	return connect.NewResponse(resp), nil
}
