package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Bucket housekeeping. Idle senders are evicted so the map does not grow
// with every customer who ever messaged the bot.
const (
	cleanupInterval = 5 * time.Minute
	idleEviction    = 10 * time.Minute
)

// RateLimiter throttles webhook traffic with a token bucket per sender.
// Twilio delivers every webhook from its own proxy fleet, so limiting by
// client IP would pool all customers into a handful of buckets; instead the
// WhatsApp sender number is the key, with the IP as fallback for requests
// that carry no sender.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64 // tokens per second
	burst   int     // max tokens
	now     func() time.Time
}

type bucket struct {
	tokens   float64
	lastTime time.Time
}

// NewRateLimiter creates a rate limiter allowing rate requests/sec with the
// given burst size per sender.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   burst,
		now:     time.Now,
	}
	go rl.cleanup()
	return rl
}

// Allow returns true if the request from key is within the rate limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.burst), lastTime: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastTime).Seconds()
	b.tokens += elapsed * rl.rate
	if b.tokens > float64(rl.burst) {
		b.tokens = float64(rl.burst)
	}
	b.lastTime = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		rl.evictIdle()
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-idleEviction)
	for key, b := range rl.buckets {
		if b.lastTime.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// senderKey identifies who is being limited. Webhook posts carry the
// WhatsApp sender in the From form field; everything else falls back to the
// client IP as seen by chi's RealIP middleware.
func senderKey(r *http.Request) string {
	// ParseForm caches the parsed body on the request, so the webhook
	// handler reading PostForm afterwards sees the same values.
	if r.Method == http.MethodPost &&
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		_ = r.ParseForm()
		if from := r.PostForm.Get("From"); from != "" {
			return "sender:" + from
		}
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return "ip:" + xri
	}
	return "ip:" + r.RemoteAddr
}

// RateLimit returns an HTTP middleware that rejects requests exceeding the
// configured per-sender rate with 429 Too Many Requests.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(senderKey(r)) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
