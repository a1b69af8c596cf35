// Package ratelimit provides per-client token bucket rate limiting for the
// course API. Generation endpoints get tight limits because each request may
// spend minutes of model time; reads fall through to a lenient default.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Rule binds a path prefix and method to a request budget.
type Rule struct {
	Prefix string
	Method string
	Limit  int           // requests per Window; <= 0 means unlimited
	Window time.Duration
	Burst  int           // bucket capacity; defaults to Limit
}

// Info reports bucket state for response headers.
type Info struct {
	Limited    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

func (b *bucket) take() (ok bool, remaining int, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, int(b.tokens), 0
	}
	wait := time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	return false, 0, wait
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	mu      sync.Mutex
	rules   []Rule
	buckets map[string]*bucket
	enabled bool
}

// New creates a limiter with the given rules. A nil rule set disables
// limiting entirely.
func New(rules []Rule) *Limiter {
	return &Limiter{
		rules:   rules,
		buckets: make(map[string]*bucket),
		enabled: len(rules) > 0,
	}
}

// Allow consumes one token for the client on the matched rule. Unmatched
// requests and unlimited rules always pass.
func (l *Limiter) Allow(clientID, path, method string) Info {
	if !l.enabled {
		return Info{}
	}
	rule := l.match(path, method)
	if rule == nil || rule.Limit <= 0 {
		return Info{}
	}

	key := clientID + " " + rule.Method + " " + rule.Prefix
	b := l.bucketFor(key, rule)
	ok, remaining, retryAfter := b.take()
	return Info{
		Limited:    !ok,
		Limit:      rule.Limit,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}
}

// match returns the first rule whose prefix and method cover the request.
func (l *Limiter) match(path, method string) *Rule {
	for i := range l.rules {
		r := &l.rules[i]
		if r.Method != "" && r.Method != method {
			continue
		}
		if strings.HasPrefix(path, r.Prefix) {
			return r
		}
	}
	return nil
}

func (l *Limiter) bucketFor(key string, rule *Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := &bucket{
		tokens:     float64(capacity),
		capacity:   float64(capacity),
		refillRate: float64(rule.Limit) / rule.Window.Seconds(),
		lastRefill: time.Now(),
	}
	l.buckets[key] = b
	return b
}

// DefaultRules returns the endpoint budgets for the course API.
func DefaultRules() []Rule {
	return []Rule{
		// Each /generate call may hold a model connection for minutes.
		{Prefix: "/generate", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Prefix: "/courses", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Prefix: "/materials/", Method: "POST", Limit: 300, Window: time.Hour, Burst: 30},
		{Prefix: "/materials/", Method: "PUT", Limit: 300, Window: time.Hour, Burst: 30},
		// Health stays unlimited for probes.
		{Prefix: "/health", Limit: 0},
	}
}
