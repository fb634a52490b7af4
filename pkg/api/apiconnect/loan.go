package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// LoanServiceName is the fully-qualified name of the LoanService.
const LoanServiceName = "fintrack.v1.LoanService"

// Procedure paths of the LoanService.
const (
	LoanServiceCreateLoanProcedure     = "/" + LoanServiceName + "/CreateLoan"
	LoanServicePayInstallmentProcedure = "/" + LoanServiceName + "/PayInstallment"
	LoanServiceDeleteLoanProcedure     = "/" + LoanServiceName + "/DeleteLoan"
	LoanServiceListLoansProcedure      = "/" + LoanServiceName + "/ListLoans"
)

// LoanServiceHandler is implemented by the server side of the LoanService.
// LoanService tracks amortized loans.
type LoanServiceHandler interface {
	CreateLoan(context.Context, *connect.Request[api.CreateLoanRequest]) (*connect.Response[api.CreateLoanResponse], error)
	PayInstallment(context.Context, *connect.Request[api.PayInstallmentRequest]) (*connect.Response[api.PayInstallmentResponse], error)
	DeleteLoan(context.Context, *connect.Request[api.DeleteLoanRequest]) (*connect.Response[api.DeleteLoanResponse], error)
	ListLoans(context.Context, *connect.Request[api.ListLoansRequest]) (*connect.Response[api.ListLoansResponse], error)
}

// NewLoanServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewLoanServiceHandler(svc LoanServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, LoanServiceCreateLoanProcedure, svc.CreateLoan, opts)
	handle(mux, LoanServicePayInstallmentProcedure, svc.PayInstallment, opts)
	handle(mux, LoanServiceDeleteLoanProcedure, svc.DeleteLoan, opts)
	handle(mux, LoanServiceListLoansProcedure, svc.ListLoans, opts)
	return "/" + LoanServiceName + "/", mux
}

// LoanServiceClient calls a remote LoanService.
type LoanServiceClient struct {
	createLoan     *connect.Client[api.CreateLoanRequest, api.CreateLoanResponse]
	payInstallment *connect.Client[api.PayInstallmentRequest, api.PayInstallmentResponse]
	deleteLoan     *connect.Client[api.DeleteLoanRequest, api.DeleteLoanResponse]
	listLoans      *connect.Client[api.ListLoansRequest, api.ListLoansResponse]
}

// NewLoanServiceClient creates a client for the LoanService served at baseURL.
func NewLoanServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LoanServiceClient {
	opts = clientOptions(opts)
	return &LoanServiceClient{
		createLoan:     newClient[api.CreateLoanRequest, api.CreateLoanResponse](httpClient, baseURL, LoanServiceCreateLoanProcedure, opts),
		payInstallment: newClient[api.PayInstallmentRequest, api.PayInstallmentResponse](httpClient, baseURL, LoanServicePayInstallmentProcedure, opts),
		deleteLoan:     newClient[api.DeleteLoanRequest, api.DeleteLoanResponse](httpClient, baseURL, LoanServiceDeleteLoanProcedure, opts),
		listLoans:      newClient[api.ListLoansRequest, api.ListLoansResponse](httpClient, baseURL, LoanServiceListLoansProcedure, opts),
	}
}

func (c *LoanServiceClient) CreateLoan(ctx context.Context, req *connect.Request[api.CreateLoanRequest]) (*connect.Response[api.CreateLoanResponse], error) {
	return c.createLoan.CallUnary(ctx, req)
}

func (c *LoanServiceClient) PayInstallment(ctx context.Context, req *connect.Request[api.PayInstallmentRequest]) (*connect.Response[api.PayInstallmentResponse], error) {
	return c.payInstallment.CallUnary(ctx, req)
}

func (c *LoanServiceClient) DeleteLoan(ctx context.Context, req *connect.Request[api.DeleteLoanRequest]) (*connect.Response[api.DeleteLoanResponse], error) {
	return c.deleteLoan.CallUnary(ctx, req)
}

func (c *LoanServiceClient) ListLoans(ctx context.Context, req *connect.Request[api.ListLoansRequest]) (*connect.Response[api.ListLoansResponse], error) {
	return c.listLoans.CallUnary(ctx, req)
}
