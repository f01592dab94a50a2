package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/warrantyguard/claim-portal/internal/client"
	"github.com/warrantyguard/claim-portal/internal/config"
	"github.com/warrantyguard/claim-portal/internal/inflight"
	"github.com/warrantyguard/claim-portal/internal/lifecycle"
	"github.com/warrantyguard/claim-portal/internal/logger"
	"github.com/warrantyguard/claim-portal/internal/metrics"
	"github.com/warrantyguard/claim-portal/internal/model"
	"github.com/warrantyguard/claim-portal/internal/probe"
	"github.com/warrantyguard/claim-portal/internal/scheduler"
	"github.com/warrantyguard/claim-portal/internal/service"
	"github.com/warrantyguard/claim-portal/internal/web"
)

const (
	shutdownTimeout = 15 * time.Second

	// An action request makes up to four sequential backend calls: the
	// status read, the advance, the reload and, when the advance fails, a
	// read of the current claim for the error page.
	backendCallsPerRequest = 4
	writeTimeoutMargin     = 5 * time.Second
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAll()
	if err != nil {
		logger.New("info").Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("portal stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log.Info("claim portal starting",
		zap.String("addr", cfg.Server.Address),
		zap.String("backend", cfg.Backend.URL),
		zap.Duration("backend_timeout", cfg.Backend.Timeout),
		zap.Bool("redis", cfg.Redis.Enabled),
	)

	backend := client.NewBackendClient(cfg.Backend.URL, cfg.Backend.Timeout)

	gate, closeGate, err := newGate(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeGate()

	onAdvanced, onFailed := advanceHooks(log)
	claims := service.NewClaimService(backend, service.Operator{
		AgentID:      cfg.Operator.AgentID,
		TechnicianID: cfg.Operator.TechnicianID,
		RepairNotes:  cfg.Operator.RepairNotes,
	}, gate, cfg.Inflight.TTL).WithHooks(onAdvanced, onFailed)

	status := probe.NewStatus(backend, cfg.Backend.Timeout, log.Named("probe"))
	sched, err := scheduler.New(cfg.Probe.Interval, status.Check, log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("probe scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	h, err := web.NewHandler(claims, status, log.Named("web"))
	if err != nil {
		return fmt.Errorf("web handler: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           loggingMiddleware(log.Named("http"), web.Router(h)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout(cfg.Backend.Timeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("http server stopped")
	return nil
}

func writeTimeout(backend time.Duration) time.Duration {
	return backendCallsPerRequest*backend + writeTimeoutMargin
}

// advanceHooks records stage-advance outcomes. The service reports unresolved
// action names as service.UnknownActionLabel, which keeps the label set fixed.
func advanceHooks(log *zap.Logger) (
	func(context.Context, model.ClaimID, lifecycle.Action),
	func(context.Context, model.ClaimID, string, error),
) {
	onAdvanced := func(_ context.Context, id model.ClaimID, action lifecycle.Action) {
		metrics.StageAdvancesTotal.WithLabelValues(action.Name, "ok").Inc()
		log.Info("stage advanced",
			zap.String("claim_id", id.String()),
			zap.String("action", action.Name),
			zap.String("stage", string(action.Stage)),
		)
	}
	onFailed := func(_ context.Context, id model.ClaimID, action string, err error) {
		metrics.StageAdvancesTotal.WithLabelValues(action, "failed").Inc()
		log.Warn("stage advance failed",
			zap.String("claim_id", id.String()),
			zap.String("action", action),
			zap.Error(err),
		)
	}
	return onAdvanced, onFailed
}

// newGate returns the Redis gate when REDIS_ADDR is set, the in-process one
// otherwise.
func newGate(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (inflight.Gate, func(), error) {
	if !cfg.Enabled {
		log.Info("in-flight gate: memory")
		return inflight.NewMemoryGate(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Address, err)
	}

	log.Info("in-flight gate: redis", zap.String("addr", cfg.Address), zap.Int("db", cfg.DB))
	return inflight.NewRedisGate(rdb), func() { _ = rdb.Close() }, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
