package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spa12/spa-api/internal/config"
	"github.com/spa12/spa-api/internal/domain/booking"
	"github.com/spa12/spa-api/internal/domain/payment"
	"github.com/spa12/spa-api/internal/domain/testimonial"
)

func testRouter(allowedOrigins []string) http.Handler {
	cfg := &config.Config{
		Env:            "test",
		AllowedOrigins: allowedOrigins,
	}
	return newRouter(cfg,
		booking.NewHandler(nil),
		testimonial.NewHandler(nil),
		payment.NewHandler(nil, payment.NewTransactionStore(nil, 0), 0),
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !env.Success || env.Data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %+v", env)
	}
}

func TestCORSPreflightForConfiguredOrigin(t *testing.T) {
	r := testRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/testimonials", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected configured origin to be allowed, got %q", got)
	}
}

func TestCORSPreflightForUnknownOrigin(t *testing.T) {
	r := testRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/testimonials", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected unknown origin to be rejected, got %q", got)
	}
}
