// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gigfin/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

// testRouter builds the router with handler groups that have no backing
// stores. Only routes that never touch storage (health, calculators) may
// be exercised.
func testRouter() http.Handler {
	return New(nil, Handlers{
		Public:      handlers.NewPublic(nil, nil, nil, nil, ""),
		Calculators: handlers.NewCalculators(),
		Auth:        handlers.NewAuth(nil, nil),
		Admin:       handlers.NewAdmin(nil, nil, nil, nil),
		Media:       handlers.NewMedia(nil),
	})
}

func TestRouterHealthRoute(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}

	// Security headers are applied globally.
	if w.Header().Get("X-Content-Type-Options") == "" {
		t.Error("expected security headers on responses")
	}
}

func TestRouterCalculatorRoutes(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/calculators/fuel-cost?distance_km=100&price_per_liter=6&km_per_liter=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /calculators/fuel-cost: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/no-such-route/at-all/here/deep", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("unknown route: got %d, want 404", w.Code)
	}
}
