package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/auth"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	locked        func() bool
}

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates the PIN lock service. locked reports whether the
// lock is currently enabled.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, locked func() bool) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		locked:        locked,
	}
}

// Unlock checks the PIN and returns a session token.
func (s *AuthService) Unlock(ctx context.Context, req *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error) {
	if err := s.authenticator.Authenticate(ctx, req.Msg.PIN); err != nil {
		slog.Warn("Unlock failed", "error", err)
		return nil, toConnectError(err)
	}

	token, expiresAt, err := s.jwtManager.Generate()
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Unlocked", "expires_at", expiresAt)
	return connect.NewResponse(&api.UnlockResponse{Token: token, ExpiresAt: expiresAt.Unix()}), nil
}

// SetPIN enables the lock or changes the PIN. Changing an enabled PIN needs
// an unlocked session.
func (s *AuthService) SetPIN(ctx context.Context, req *connect.Request[api.SetPINRequest]) (*connect.Response[api.SetPINResponse], error) {
	if s.locked() {
		if err := s.requireSession(req.Header().Get("Authorization")); err != nil {
			return nil, toConnectError(err)
		}
	}
	if err := s.authenticator.SetCredential(ctx, req.Msg.PIN); err != nil {
		return nil, toConnectError(err)
	}

	token, expiresAt, err := s.jwtManager.Generate()
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("PIN lock enabled")
	return connect.NewResponse(&api.SetPINResponse{Token: token, ExpiresAt: expiresAt.Unix()}), nil
}

// DisablePIN turns the lock off. It needs the current PIN.
func (s *AuthService) DisablePIN(ctx context.Context, req *connect.Request[api.DisablePINRequest]) (*connect.Response[api.DisablePINResponse], error) {
	if err := s.authenticator.Authenticate(ctx, req.Msg.PIN); err != nil {
		slog.Warn("DisablePIN failed", "error", err)
		return nil, toConnectError(err)
	}
	s.authenticator.Disable(ctx)
	slog.Info("PIN lock disabled")
	return connect.NewResponse(&api.DisablePINResponse{}), nil
}

func (s *AuthService) requireSession(header string) error {
	if header == "" {
		return auth.ErrMissingToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return auth.ErrInvalidToken
	}
	_, err := s.jwtManager.Validate(token)
	return err
}
