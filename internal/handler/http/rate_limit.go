// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"strings"
	"sync"
	"time"
)

// Idle buckets older than this are dropped during the periodic sweep.
const rateLimitEntryTTL = 10 * time.Minute

// IPRateLimiter is a per-IP token bucket limiter for the gate's public
// endpoint. It is safe for concurrent use by multiple goroutines.
//
// A nil *IPRateLimiter is a valid limiter that allows everything, so the
// handler can hold one unconditionally.
type IPRateLimiter struct {
	mu          sync.Mutex
	qps         float64
	burst       float64
	ttl         time.Duration
	now         func() time.Time
	lastCleanup time.Time
	buckets     map[string]*tokenBucket
}

type tokenBucket struct {
	tokens   float64
	last     time.Time
	lastSeen time.Time
}

// NewIPRateLimiter creates a per-IP limiter. Non-positive qps or burst
// disables rate limiting and returns nil.
func NewIPRateLimiter(qps float64, burst int) *IPRateLimiter {
	if qps <= 0 || burst <= 0 {
		return nil
	}
	return &IPRateLimiter{
		qps:     qps,
		burst:   float64(burst),
		ttl:     rateLimitEntryTTL,
		now:     time.Now,
		buckets: make(map[string]*tokenBucket),
	}
}

// Allow reports whether a request from remoteAddr may proceed. Requests
// whose address cannot be attributed to a concrete IP are refused.
func (l *IPRateLimiter) Allow(remoteAddr string) bool {
	if l == nil {
		return true
	}
	ip := parseRemoteIP(remoteAddr)
	if ip == nil || ip.IsUnspecified() {
		return false
	}
	key := ip.String()
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanupLocked(now)

	bucket := l.buckets[key]
	if bucket == nil {
		bucket = &tokenBucket{
			tokens:   l.burst,
			last:     now,
			lastSeen: now,
		}
		l.buckets[key] = bucket
	}
	bucket.lastSeen = now

	if now.After(bucket.last) {
		elapsed := now.Sub(bucket.last).Seconds()
		bucket.tokens += elapsed * l.qps
		if bucket.tokens > l.burst {
			bucket.tokens = l.burst
		}
		bucket.last = now
	}

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

func (l *IPRateLimiter) cleanupLocked(now time.Time) {
	if l.ttl <= 0 {
		return
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < l.ttl {
		return
	}
	for key, bucket := range l.buckets {
		if bucket == nil || now.Sub(bucket.lastSeen) > l.ttl {
			delete(l.buckets, key)
		}
	}
	l.lastCleanup = now
}

// parseRemoteIP extracts the IP from an http.Request RemoteAddr value,
// tolerating missing ports, bracketed IPv6 literals and zone suffixes.
func parseRemoteIP(remoteAddr string) net.IP {
	remoteAddr = strings.TrimSpace(remoteAddr)
	if remoteAddr == "" {
		return nil
	}
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if idx := strings.LastIndex(host, "%"); idx >= 0 {
		host = host[:idx]
	}
	return net.ParseIP(host)
}
