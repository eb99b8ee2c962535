package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hookline/gateway/internal/adapter"
	"github.com/hookline/gateway/internal/config"
	"github.com/hookline/gateway/internal/logger"
)

// Limiter decides whether a request from a given client should be admitted
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow reports whether the client identified by key may proceed
	Allow(key string) bool

	// Close stops background maintenance
	Close() error
}

// clientEntry holds the rate limiting state for a single client
type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter keeps an in-memory token bucket per client key.
// Idle clients are pruned after the configured TTL so the map
// does not grow without bound.
type localLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       rate.Limit
	burst     int
	clientTTL time.Duration
	clock     adapter.Clock
	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewLocalLimiter creates a per-client rate limiter from configuration
func NewLocalLimiter(cfg config.RateLimitConfig, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.RequestsPerSecond)
	}
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = 10 * time.Minute
	}
	if clock == nil {
		clock = adapter.NewClock()
	}

	l := &localLimiter{
		clients:   make(map[string]*clientEntry),
		rps:       rate.Limit(cfg.RequestsPerSecond),
		burst:     cfg.Burst,
		clientTTL: cfg.ClientTTL,
		clock:     clock,
		done:      make(chan struct{}),
	}

	go l.pruneLoop()

	logger.Info("Rate limiter initialized",
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Duration("client_ttl", cfg.ClientTTL),
	)

	return l, nil
}

// Allow reports whether the client identified by key may proceed
func (l *localLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = entry
	}
	entry.lastSeen = l.clock.Now()

	return entry.limiter.Allow()
}

// pruneLoop periodically evicts clients that have been idle past the TTL
func (l *localLimiter) pruneLoop() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.clientTTL):
			l.prune()
		}
	}
}

func (l *localLimiter) prune() {
	cutoff := l.clock.Now().Add(-l.clientTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Close stops background maintenance
func (l *localLimiter) Close() error {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
	return nil
}
