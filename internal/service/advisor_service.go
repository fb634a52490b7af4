package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/advisor"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/internal/observability"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// Advisor is the generative model collaborator. *advisor.Client is one.
type Advisor interface {
	ScanReceipt(ctx context.Context, image string) (*advisor.ReceiptScan, error)
	ParseSMS(ctx context.Context, text string) (*advisor.SMSParse, error)
	ParseVoice(ctx context.Context, text string) (*advisor.VoiceCommand, error)
	Forecast(ctx context.Context, txs []models.Transaction) (*advisor.Forecast, error)
	Ask(ctx context.Context, query string, history []advisor.Turn) (string, error)
}

// AdvisorService implements the Connect AdvisorService.
// Suggestions are returned to the caller and never recorded.
type AdvisorService struct {
	ledger  *ledger.Ledger
	advisor Advisor
	metrics *observability.Metrics
}

var _ apiconnect.AdvisorServiceHandler = (*AdvisorService)(nil)

// NewAdvisorService creates an AdvisorService. metrics may be nil.
func NewAdvisorService(l *ledger.Ledger, a Advisor, metrics *observability.Metrics) *AdvisorService {
	return &AdvisorService{ledger: l, advisor: a, metrics: metrics}
}

func (s *AdvisorService) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.SuggestionResponse], error) {
	scan, err := s.advisor.ScanReceipt(ctx, req.Msg.Image)
	if err != nil {
		return nil, s.fail("scan_receipt", err)
	}
	return connect.NewResponse(&api.SuggestionResponse{Suggestion: scan.Transaction(s.ledger.Today())}), nil
}

func (s *AdvisorService) ParseSMS(ctx context.Context, req *connect.Request[api.ParseSMSRequest]) (*connect.Response[api.SuggestionResponse], error) {
	sms, err := s.advisor.ParseSMS(ctx, req.Msg.Text)
	if err != nil {
		return nil, s.fail("parse_sms", err)
	}
	return connect.NewResponse(&api.SuggestionResponse{Suggestion: sms.Transaction(s.ledger.Today())}), nil
}

func (s *AdvisorService) ParseVoice(ctx context.Context, req *connect.Request[api.ParseVoiceRequest]) (*connect.Response[api.SuggestionResponse], error) {
	cmd, err := s.advisor.ParseVoice(ctx, req.Msg.Text)
	if err != nil {
		return nil, s.fail("parse_voice", err)
	}
	return connect.NewResponse(&api.SuggestionResponse{Suggestion: cmd.Transaction(s.ledger.Today())}), nil
}

func (s *AdvisorService) Forecast(ctx context.Context, req *connect.Request[api.ForecastRequest]) (*connect.Response[api.ForecastResponse], error) {
	f, err := s.advisor.Forecast(ctx, s.ledger.Snapshot().Transactions)
	if err != nil {
		return nil, s.fail("forecast", err)
	}
	return connect.NewResponse(&api.ForecastResponse{Forecast: *f}), nil
}

// Ask never fails because of the model; it answers with the fallback instead.
func (s *AdvisorService) Ask(ctx context.Context, req *connect.Request[api.AskRequest]) (*connect.Response[api.AskResponse], error) {
	answer, err := s.advisor.Ask(ctx, req.Msg.Query, req.Msg.History)
	if err != nil {
		if !errors.Is(err, advisor.ErrCouldNotParse) {
			return nil, s.fail("ask", err)
		}
		s.record("ask", err)
		return connect.NewResponse(&api.AskResponse{Answer: advisor.FallbackAnswer, Fallback: true}), nil
	}
	return connect.NewResponse(&api.AskResponse{Answer: answer}), nil
}

func (s *AdvisorService) fail(op string, err error) error {
	s.record(op, err)
	return toConnectError(err)
}

func (s *AdvisorService) record(op string, err error) {
	if !errors.Is(err, advisor.ErrCouldNotParse) {
		return
	}
	slog.Warn("Advisor unavailable", "op", op, "error", err)
	if s.metrics != nil {
		s.metrics.IncrExternalError("advisor")
	}
}
