package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// ToolsService implements the Connect ToolsService.
// The calculators are stateless; the ledger only supplies defaults.
type ToolsService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.ToolsServiceHandler = (*ToolsService)(nil)

// NewToolsService creates a ToolsService over l.
func NewToolsService(l *ledger.Ledger) *ToolsService {
	return &ToolsService{ledger: l}
}

func (s *ToolsService) Convert(ctx context.Context, req *connect.Request[api.ConvertRequest]) (*connect.Response[api.ConvertResponse], error) {
	amount, err := calculator.Convert(req.Msg.Amount, req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ConvertResponse{Amount: amount, Currencies: calculator.Currencies()}), nil
}

func (s *ToolsService) IncomeTax(ctx context.Context, req *connect.Request[api.IncomeTaxRequest]) (*connect.Response[api.IncomeTaxResponse], error) {
	female := s.ledger.Snapshot().Profile.Gender == "female"
	if req.Msg.Female != nil {
		female = *req.Msg.Female
	}
	breakdown, err := calculator.IncomeTax(req.Msg.AnnualIncome, female)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.IncomeTaxResponse{Breakdown: breakdown}), nil
}

func (s *ToolsService) Zakat(ctx context.Context, req *connect.Request[api.ZakatRequest]) (*connect.Response[api.ZakatResponse], error) {
	var cash float64
	if req.Msg.Cash != nil {
		cash = *req.Msg.Cash
	} else {
		cash = calculator.CashBalance(s.ledger.Snapshot().Transactions)
	}
	result, err := calculator.Zakat(cash, req.Msg.Assets, req.Msg.Gold, req.Msg.Silver)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ZakatResponse{Result: result}), nil
}
