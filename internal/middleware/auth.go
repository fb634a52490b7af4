package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SessionExpiryKey is the context key for the expiry of the unlocked session.
const SessionExpiryKey contextKey = "session_expiry"

// sessionSlotKey holds an *int64 that outer interceptors read after the call.
const sessionSlotKey contextKey = "session_slot"

// authServicePrefix covers the procedures that must work while locked.
const authServicePrefix = "/fintrack.v1.AuthService/"

// SessionExpiry returns the unix expiry of the session token on ctx, or 0
// when the request carried none.
func SessionExpiry(ctx context.Context) int64 {
	exp, _ := ctx.Value(SessionExpiryKey).(int64)
	return exp
}

// RequireSession rejects calls without a valid session token while the PIN
// lock is enabled. AuthService procedures are always let through so the
// owner can unlock.
func RequireSession(jwtManager *auth.JWTManager, locked func() bool) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if strings.HasPrefix(req.Spec().Procedure, authServicePrefix) || !locked() {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			if claims.ExpiresAt != nil {
				exp := claims.ExpiresAt.Unix()
				ctx = context.WithValue(ctx, SessionExpiryKey, exp)
				if slot, ok := ctx.Value(sessionSlotKey).(*int64); ok {
					*slot = exp
				}
			}
			return next(ctx, req)
		}
	}
}
