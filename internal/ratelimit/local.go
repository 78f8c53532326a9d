package ratelimit

import (
	"sync"
	"time"
)

type localBucket struct {
	tokens float64
	ts     time.Time
}

// Local is an in-process token bucket used when no redis address is
// configured. State is per instance, which is fine for a single-node deploy.
type Local struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	rate    float64
	burst   float64
}

func NewLocal(rate float64, burst int) *Local {
	return &Local{
		buckets: make(map[string]*localBucket),
		rate:    rate,
		burst:   float64(burst),
	}
}

func (l *Local) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{tokens: l.burst, ts: now}
		l.buckets[key] = b
	} else {
		delta := now.Sub(b.ts).Seconds()
		if delta > 0 {
			b.tokens += delta * l.rate
			if b.tokens > l.burst {
				b.tokens = l.burst
			}
		}
		b.ts = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}
