package ratelimit

import (
	"sync"
	"time"
)

// Config tunes the token bucket limiter.
type Config struct {
	Rate       float64       // refill rate, tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped (0 keeps them forever)
	MaxBuckets int           // hard cap on tracked keys (0 means unlimited)
}

// TokenBucketLimiter keeps one token bucket per key.
type TokenBucketLimiter struct {
	cfg     Config
	clock   Clock
	mu      sync.RWMutex
	buckets map[string]*bucket
	swept   time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	refilled time.Time
	touched  time.Time
}

// NewTokenBucketLimiter builds a limiter from explicit config. A nil clock
// falls back to wall time.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// NewTokenBucketPerWindow expresses the limit as "n requests per window".
func NewTokenBucketPerWindow(clock Clock, limit int, window, ttl time.Duration, maxBuckets int) *TokenBucketLimiter {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return NewTokenBucketLimiter(clock, Config{
		Rate:       float64(limit) / window.Seconds(),
		Burst:      limit,
		TTL:        ttl,
		MaxBuckets: maxBuckets,
	})
}

// Allow reports whether the key may proceed right now.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()
	l.sweepIdle(now)

	b := l.lookup(key, now)
	if b == nil {
		// table is full; refusing beats growing without bound
		return false
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (l *TokenBucketLimiter) lookup(key string, now time.Time) *bucket {
	l.mu.RLock()
	b := l.buckets[key]
	l.mu.RUnlock()
	if b != nil {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b = l.buckets[key]; b != nil {
		return b
	}
	if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
		return nil
	}

	b = &bucket{tokens: float64(l.cfg.Burst), refilled: now, touched: now}
	l.buckets[key] = b
	return b
}

func (b *bucket) take(now time.Time, rate, burst float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if dt := now.Sub(b.refilled); dt > 0 {
		b.tokens += dt.Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.refilled = now
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweepIdle drops buckets idle longer than TTL. Runs at most once per
// max(minute, TTL/2) so the hot path rarely pays for it.
func (l *TokenBucketLimiter) sweepIdle(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.swept.IsZero() && now.Sub(l.swept) < interval {
		return
	}
	l.swept = now

	for k, b := range l.buckets {
		b.mu.Lock()
		idle := now.Sub(b.touched)
		b.mu.Unlock()
		if idle > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
