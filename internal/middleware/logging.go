package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, duration and result code. Calls made with an unlocked
// session also log when that session expires.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			session := new(int64)
			ctx = context.WithValue(ctx, sessionSlotKey, session)

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if *session != 0 {
				attrs = append(attrs, "session_expires_at", time.Unix(*session, 0).UTC().Format(time.RFC3339))
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Debug("RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() == connect.CodeUnauthenticated:
				slog.Info("RPC rejected while locked", append(attrs, "error", connectErr.Message())...)
			case errors.As(err, &connectErr):
				slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}
