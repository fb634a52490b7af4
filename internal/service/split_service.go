package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// SplitService implements the Connect SplitService.
type SplitService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.SplitServiceHandler = (*SplitService)(nil)

// NewSplitService creates a SplitService over l.
func NewSplitService(l *ledger.Ledger) *SplitService {
	return &SplitService{ledger: l}
}

func splitView(s models.BillSplit) api.SplitView {
	return api.SplitView{BillSplit: s, PerHeadShare: calculator.PerHeadShare(s)}
}

// CreateSplit records an equal split. The first participant is the payer.
func (s *SplitService) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	participants := req.Msg.Participants
	if len(participants) == 0 {
		participants = calculator.ParseParticipants(req.Msg.ParticipantsText)
	}
	slog.Debug("Creating split", "title", req.Msg.Title, "total", req.Msg.TotalAmount, "participants", participants)

	split, err := s.ledger.CreateSplit(ctx, req.Msg.Title, req.Msg.TotalAmount, participants)
	if err != nil {
		slog.Warn("CreateSplit failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateSplitResponse{Split: splitView(split)}), nil
}

func (s *SplitService) ToggleSettled(ctx context.Context, req *connect.Request[api.ToggleSettledRequest]) (*connect.Response[api.ToggleSettledResponse], error) {
	split, err := s.ledger.ToggleSettled(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ToggleSettledResponse{Split: splitView(split)}), nil
}

func (s *SplitService) DeleteSplit(ctx context.Context, req *connect.Request[api.DeleteSplitRequest]) (*connect.Response[api.DeleteSplitResponse], error) {
	return connect.NewResponse(&api.DeleteSplitResponse{Deleted: s.ledger.DeleteSplit(ctx, req.Msg.ID)}), nil
}

// ListSplits lists every split and settles up the unsettled ones.
func (s *SplitService) ListSplits(ctx context.Context, req *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error) {
	splits := s.ledger.Snapshot().Splits
	views := make([]api.SplitView, len(splits))
	for i, split := range splits {
		views[i] = splitView(split)
	}
	balances, transfers := calculator.SettleUp(splits)
	return connect.NewResponse(&api.ListSplitsResponse{
		Splits:    views,
		Balances:  orEmpty(balances),
		Transfers: orEmpty(transfers),
	}), nil
}
