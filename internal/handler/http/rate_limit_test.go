package http

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter — лимитер с управляемыми часами.
func newTestLimiter(t *testing.T, qps float64, burst int) (*IPRateLimiter, *time.Time) {
	t.Helper()
	limiter := NewIPRateLimiter(qps, burst)
	require.NotNil(t, limiter)

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

// ─────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────

func TestNewIPRateLimiter_DisabledOnZeroQPS(t *testing.T) {
	assert.Nil(t, NewIPRateLimiter(0, 10))
	assert.Nil(t, NewIPRateLimiter(-1, 10))
	assert.Nil(t, NewIPRateLimiter(5, 0))
}

func TestIPRateLimiter_NilAllowsEverything(t *testing.T) {
	var limiter *IPRateLimiter

	for i := 0; i < 1000; i++ {
		require.True(t, limiter.Allow("192.0.2.1:1234"))
	}
}

// ─────────────────────────────────────────────
// Token bucket behaviour
// ─────────────────────────────────────────────

func TestIPRateLimiter_BurstThenRefusal(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("192.0.2.1:1234"), "request %d within burst", i+1)
	}
	assert.False(t, limiter.Allow("192.0.2.1:1234"), "burst exhausted")
}

func TestIPRateLimiter_TokensRefillOverTime(t *testing.T) {
	limiter, now := newTestLimiter(t, 2, 2)

	require.True(t, limiter.Allow("192.0.2.1:1234"))
	require.True(t, limiter.Allow("192.0.2.1:1234"))
	require.False(t, limiter.Allow("192.0.2.1:1234"))

	// Полсекунды при qps=2 возвращают ровно один токен.
	*now = now.Add(500 * time.Millisecond)
	assert.True(t, limiter.Allow("192.0.2.1:1234"))
	assert.False(t, limiter.Allow("192.0.2.1:1234"))
}

func TestIPRateLimiter_RefillCappedAtBurst(t *testing.T) {
	limiter, now := newTestLimiter(t, 100, 2)

	require.True(t, limiter.Allow("192.0.2.1:1234"))

	// Долгое затишье не копит токенов сверх burst.
	*now = now.Add(time.Hour)
	assert.True(t, limiter.Allow("192.0.2.1:1234"))
	assert.True(t, limiter.Allow("192.0.2.1:1234"))
	assert.False(t, limiter.Allow("192.0.2.1:1234"))
}

func TestIPRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 1)

	require.True(t, limiter.Allow("192.0.2.1:1111"))
	require.False(t, limiter.Allow("192.0.2.1:2222"), "same IP, different port shares the bucket")

	assert.True(t, limiter.Allow("192.0.2.2:1111"), "different IP has its own bucket")
}

func TestIPRateLimiter_RefusesUnattributableAddresses(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 100)

	assert.False(t, limiter.Allow(""))
	assert.False(t, limiter.Allow("not-an-address"))
	assert.False(t, limiter.Allow("0.0.0.0:80"))
}

func TestIPRateLimiter_IPv6Addresses(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 1)

	require.True(t, limiter.Allow("[2001:db8::1]:443"))
	assert.False(t, limiter.Allow("[2001:db8::1]:8443"), "same IPv6 shares the bucket")
	assert.True(t, limiter.Allow("[2001:db8::2]:443"))
}

// ─────────────────────────────────────────────
// Cleanup
// ─────────────────────────────────────────────

func TestIPRateLimiter_SweepsIdleBuckets(t *testing.T) {
	limiter, now := newTestLimiter(t, 1, 1)

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("192.0.2.%d:80", i+1))
	}
	require.Len(t, limiter.buckets, 10)

	// Все корзины простаивают дольше TTL и выметаются следующим запросом.
	*now = now.Add(2 * rateLimitEntryTTL)
	limiter.Allow("198.51.100.1:80")

	assert.Len(t, limiter.buckets, 1)
}
