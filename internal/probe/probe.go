package probe

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/warrantyguard/claim-portal/internal/metrics"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Snapshot is the outcome of the most recent probe. A zero CheckedAt means
// no probe has run yet.
type Snapshot struct {
	Up        bool
	CheckedAt time.Time
	Error     string
}

// Status records backend liveness for the home page.
type Status struct {
	pinger  Pinger
	timeout time.Duration
	log     *zap.Logger

	mu   sync.RWMutex
	last Snapshot
}

func NewStatus(p Pinger, timeout time.Duration, log *zap.Logger) *Status {
	if log == nil {
		log = zap.NewNop()
	}
	return &Status{pinger: p, timeout: timeout, log: log}
}

// Check pings the backend once and records the result. It has the signature
// the scheduler expects from a tick function.
func (s *Status) Check(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.pinger.Ping(ctx)
	snap := Snapshot{Up: err == nil, CheckedAt: time.Now().UTC()}
	if err != nil {
		snap.Error = err.Error()
	}

	s.mu.Lock()
	wasUp, seen := s.last.Up, !s.last.CheckedAt.IsZero()
	s.last = snap
	s.mu.Unlock()

	if snap.Up {
		metrics.BackendUp.Set(1)
	} else {
		metrics.BackendUp.Set(0)
	}

	switch {
	case !seen || wasUp != snap.Up:
		s.log.Info("backend probe state", zap.Bool("up", snap.Up), zap.String("error", snap.Error))
	default:
		s.log.Debug("backend probe", zap.Bool("up", snap.Up))
	}
}

func (s *Status) Last() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
