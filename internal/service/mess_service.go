package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// MessService implements the Connect MessService.
type MessService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.MessServiceHandler = (*MessService)(nil)

// NewMessService creates a MessService over l.
func NewMessService(l *ledger.Ledger) *MessService {
	return &MessService{ledger: l}
}

func (s *MessService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	m, err := s.ledger.AddMember(ctx, req.Msg.Name, req.Msg.Deposit)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddMemberResponse{Member: m}), nil
}

// RemoveMember keeps the member's bazaar and meal history.
func (s *MessService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	removed := s.ledger.RemoveMember(ctx, req.Msg.ID)
	return connect.NewResponse(&api.RemoveMemberResponse{Removed: removed}), nil
}

func (s *MessService) RecordBazaar(ctx context.Context, req *connect.Request[api.RecordBazaarRequest]) (*connect.Response[api.RecordBazaarResponse], error) {
	e, err := s.ledger.RecordBazaar(ctx, req.Msg.MemberID, req.Msg.Amount, req.Msg.Item, req.Msg.Date)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RecordBazaarResponse{Entry: e}), nil
}

func (s *MessService) DeleteBazaar(ctx context.Context, req *connect.Request[api.DeleteBazaarRequest]) (*connect.Response[api.DeleteBazaarResponse], error) {
	return connect.NewResponse(&api.DeleteBazaarResponse{Deleted: s.ledger.DeleteBazaar(ctx, req.Msg.ID)}), nil
}

func (s *MessService) RecordMeal(ctx context.Context, req *connect.Request[api.RecordMealRequest]) (*connect.Response[api.RecordMealResponse], error) {
	e, err := s.ledger.RecordMeal(ctx, req.Msg.MemberID, req.Msg.Count, req.Msg.Date)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RecordMealResponse{Entry: e}), nil
}

func (s *MessService) DeleteMeal(ctx context.Context, req *connect.Request[api.DeleteMealRequest]) (*connect.Response[api.DeleteMealResponse], error) {
	return connect.NewResponse(&api.DeleteMealResponse{Deleted: s.ledger.DeleteMeal(ctx, req.Msg.ID)}), nil
}

func (s *MessService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	snap := s.ledger.Snapshot()
	resp := &api.GetSummaryResponse{
		Summary: s.ledger.MessSummary(),
		Bazaar:  orEmpty(snap.Bazaar),
		Meals:   orEmpty(snap.Meals),
	}
	if resp.Summary.Members == nil {
		resp.Summary.Members = []models.MemberStat{}
	}
	return connect.NewResponse(resp), nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
