// Package server mounts the FinTrack services on one HTTP router.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shohagvaii216/FinTrack/internal/auth"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/middleware"
	"github.com/shohagvaii216/FinTrack/internal/observability"
	"github.com/shohagvaii216/FinTrack/internal/service"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// Deps are the collaborators the router wires into the services.
type Deps struct {
	Ledger  *ledger.Ledger
	Advisor service.Advisor
	JWT     *auth.JWTManager
	Metrics *observability.Metrics
}

// NewRouter creates the HTTP router with every Connect service plus the
// /healthz and /metrics endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{}))

	opts := []connect.HandlerOption{
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(d.Metrics),
			middleware.RequireSession(d.JWT, d.Ledger.Locked),
		),
	}

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(apiconnect.NewMessServiceHandler(service.NewMessService(d.Ledger), opts...))
	mount(apiconnect.NewSplitServiceHandler(service.NewSplitService(d.Ledger), opts...))
	mount(apiconnect.NewLoanServiceHandler(service.NewLoanService(d.Ledger), opts...))
	mount(apiconnect.NewWalletServiceHandler(service.NewWalletService(d.Ledger), opts...))
	mount(apiconnect.NewToolsServiceHandler(service.NewToolsService(d.Ledger), opts...))
	mount(apiconnect.NewBackupServiceHandler(service.NewBackupService(d.Ledger), opts...))
	mount(apiconnect.NewProfileServiceHandler(service.NewProfileService(d.Ledger), opts...))
	mount(apiconnect.NewAdvisorServiceHandler(service.NewAdvisorService(d.Ledger, d.Advisor, d.Metrics), opts...))
	mount(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPINAuthenticator(d.Ledger), d.JWT, d.Ledger.Locked), opts...))

	return r
}

// requestLogger logs every HTTP request at debug level; RPC outcomes are
// logged by the Connect interceptor.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimw.GetReqID(r.Context()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
