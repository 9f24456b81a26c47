package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterBurstAndRefill(t *testing.T) {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    1,
		burst:   2,
		now:     time.Now,
	}
	clock := time.Now()
	rl.now = func() time.Time { return clock }

	if !rl.Allow("sender:whatsapp:+91a") || !rl.Allow("sender:whatsapp:+91a") {
		t.Fatal("burst requests should be allowed")
	}
	if rl.Allow("sender:whatsapp:+91a") {
		t.Fatal("request past the burst should be denied")
	}
	if !rl.Allow("sender:whatsapp:+91b") {
		t.Fatal("a different sender has its own bucket")
	}

	clock = clock.Add(1500 * time.Millisecond)
	if !rl.Allow("sender:whatsapp:+91a") {
		t.Fatal("tokens should refill over time")
	}
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    1,
		burst:   1,
		now:     time.Now,
	}
	clock := time.Now()
	rl.now = func() time.Time { return clock }

	rl.Allow("sender:whatsapp:+91a")
	clock = clock.Add(idleEviction + time.Minute)
	rl.Allow("sender:whatsapp:+91b")
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.buckets["sender:whatsapp:+91a"]; ok {
		t.Error("idle bucket should be evicted")
	}
	if _, ok := rl.buckets["sender:whatsapp:+91b"]; !ok {
		t.Error("active bucket should survive eviction")
	}
}

func TestSenderKeyPrefersWebhookSender(t *testing.T) {
	form := url.Values{"From": {"whatsapp:+919876543210"}, "Body": {"hi"}}
	r := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("X-Real-Ip", "54.1.2.3")

	if got := senderKey(r); got != "sender:whatsapp:+919876543210" {
		t.Fatalf("unexpected key %q", got)
	}

	// Without a sender the client IP is the key, so a GET is limited per IP.
	r2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	r2.Header.Set("X-Real-Ip", "54.1.2.3")
	if got := senderKey(r2); got != "ip:54.1.2.3" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestRateLimitMiddlewareRejectsFlood(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(1, 1)(next)

	send := func() *httptest.ResponseRecorder {
		form := url.Values{"From": {"whatsapp:+919876543210"}, "Body": {"hi"}}
		r := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}
	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("flood should be limited, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("limited response should carry Retry-After")
	}
}
