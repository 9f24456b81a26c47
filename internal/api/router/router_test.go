package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mckingstown/salon-bot/internal/leads"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	return New(&Config{
		Logger:          logging.New("error"),
		LeadsHandler:    leads.NewHandler(leads.NewMemoryStore(), logging.New("error")),
		DashboardSecret: "secret",
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(newRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestDashboardRequiresAuth(t *testing.T) {
	srv := httptest.NewServer(newRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/dashboard/leads")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "franchise-team",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/dashboard/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := httptest.NewServer(newRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
