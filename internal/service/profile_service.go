package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// ProfileService implements the Connect ProfileService.
// The PIN hash never leaves the server.
type ProfileService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.ProfileServiceHandler = (*ProfileService)(nil)

// NewProfileService creates a ProfileService over l.
func NewProfileService(l *ledger.Ledger) *ProfileService {
	return &ProfileService{ledger: l}
}

func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return connect.NewResponse(&api.GetProfileResponse{Profile: s.ledger.Snapshot().Profile.Public()}), nil
}

// UpdateProfile replaces the settings. PIN fields in the request are ignored.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	p, err := s.ledger.UpdateProfile(ctx, req.Msg.Profile)
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Profile updated", "reminder_time", p.ReminderTime, "base_currency", p.BaseCurrency)
	return connect.NewResponse(&api.UpdateProfileResponse{Profile: p.Public()}), nil
}
