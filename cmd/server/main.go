package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/shohagvaii216/FinTrack/internal/advisor"
	"github.com/shohagvaii216/FinTrack/internal/auth"
	"github.com/shohagvaii216/FinTrack/internal/config"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/observability"
	"github.com/shohagvaii216/FinTrack/internal/remind"
	"github.com/shohagvaii216/FinTrack/internal/server"
	"github.com/shohagvaii216/FinTrack/internal/storage"
	"github.com/shohagvaii216/FinTrack/internal/storage/sqlite"
	"github.com/shohagvaii216/FinTrack/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.OTLPEndpoint, "fintrack")
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()
	metrics := observability.NewMetrics()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	l := ledger.New()
	persister := storage.NewPersister(store)
	persister.OnError(func(c ledger.Collection, _ error) {
		metrics.IncrPersistFailure(string(c))
	})
	snap, issues, err := persister.Load(ctx, l.Now())
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	for _, issue := range issues {
		slog.Warn("Skipped stored record", "collection", issue.Collection, "index", issue.Index, "message", issue.Message)
	}
	l.Restore(ctx, snap)
	l.Subscribe(persister.Subscriber())

	var notifier remind.Notifier = remind.LogNotifier{}
	if cfg.EmailEnabled() {
		notifier = remind.Multi{notifier, remind.NewEmailNotifier(
			cfg.SMTPAddr, cfg.SMTPUser, cfg.SMTPPassword, cfg.ReminderFrom, cfg.ReminderTo)}
		slog.Info("Email reminders enabled", "to", cfg.ReminderTo)
	}
	scheduler := remind.NewScheduler(l, notifier, remind.WithMetrics(metrics))
	if err := scheduler.Start(snap.Profile.ReminderTime); err != nil {
		return fmt.Errorf("start reminders: %w", err)
	}
	l.Subscribe(scheduler.Subscriber())
	slog.Info("Reminders scheduled", "spec", scheduler.Spec())

	if cfg.JWTSecretGenerated {
		slog.Warn("JWT_SECRET is not set; using a random secret, sessions end on restart")
	}
	if cfg.AdvisorAPIKey == "" {
		slog.Warn("No advisor API key configured; advisor calls will fail")
	}
	advisorClient := advisor.NewClient(
		&http.Client{Timeout: cfg.AdvisorTimeout},
		cfg.AdvisorURL, cfg.AdvisorAPIKey, cfg.AdvisorModel, nil,
	)

	router := server.NewRouter(server.Deps{
		Ledger:  l,
		Advisor: advisorClient,
		JWT:     auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL),
		Metrics: metrics,
	})

	// h2c serves HTTP/2 without TLS for gRPC-compatible Connect clients.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		<-scheduler.Stop().Done()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
