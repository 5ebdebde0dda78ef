// Package ratelimit keeps one token bucket per caller.
package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const defaultIdleExpiry = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a keyed token bucket limiter. Buckets idle for longer than the
// expiry are dropped on the next sweep.
type Limiter struct {
	mu       sync.Mutex
	m        map[string]*visitor
	limit    rate.Limit
	burst    int
	expiry   time.Duration
	clock    clockwork.Clock
	lastScan time.Time
}

type Option func(*Limiter)

func WithClock(c clockwork.Clock) Option {
	return func(l *Limiter) { l.clock = c }
}

func WithIdleExpiry(d time.Duration) Option {
	return func(l *Limiter) { l.expiry = d }
}

func New(ratePerSecond float64, burst int, opts ...Option) *Limiter {
	l := &Limiter{
		m:      make(map[string]*visitor),
		limit:  rate.Limit(ratePerSecond),
		burst:  burst,
		expiry: defaultIdleExpiry,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastScan = l.clock.Now()
	return l
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) >= l.expiry {
		l.sweep(now)
	}

	v, ok := l.m[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.m[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}

func (l *Limiter) sweep(now time.Time) {
	for k, v := range l.m {
		if now.Sub(v.lastSeen) >= l.expiry {
			delete(l.m, k)
		}
	}
	l.lastScan = now
}
