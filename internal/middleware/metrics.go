package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/observability"
)

// MetricsInterceptor records the duration and result code of every RPC.
func MetricsInterceptor(m *observability.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RecordRPC(req.Spec().Procedure, code, time.Since(start))
			return resp, err
		}
	}
}
