package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigfin/internal/session"

	"github.com/google/uuid"
)

// newTestSession creates a session.Data value suitable for testing.
// It populates every field so assertions can check them.
func newTestSession(role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@gigfin.local",
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// ctxWithSession returns a context carrying the given session data using
// the same context key the middleware uses. This allows tests to simulate
// the state after LoadSession has run without needing a real Valkey store.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

// ---------- SessionFromCtx ----------

func TestSessionFromCtx(t *testing.T) {
	t.Run("returns session when present", func(t *testing.T) {
		sess := newTestSession("admin", true)
		ctx := ctxWithSession(context.Background(), sess)

		got := SessionFromCtx(ctx)
		if got == nil {
			t.Fatal("expected non-nil session, got nil")
		}
		if got.Email != sess.Email {
			t.Errorf("Email: got %q, want %q", got.Email, sess.Email)
		}
		if got.Role != sess.Role {
			t.Errorf("Role: got %q, want %q", got.Role, sess.Role)
		}
		if got.TwoFADone != sess.TwoFADone {
			t.Errorf("TwoFADone: got %v, want %v", got.TwoFADone, sess.TwoFADone)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		got := SessionFromCtx(context.Background())
		if got != nil {
			t.Errorf("expected nil session, got %+v", got)
		}
	})

	t.Run("returns nil for wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "not-a-session")
		got := SessionFromCtx(ctx)
		if got != nil {
			t.Errorf("expected nil for wrong type, got %+v", got)
		}
	})
}

// ---------- RequireAuth ----------

func TestRequireAuth(t *testing.T) {
	t.Run("returns 401 JSON when no session", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAuth(inner)

		req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should NOT have been called")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q, want application/json", ct)
		}
		if !strings.Contains(rr.Body.String(), "error") {
			t.Errorf("expected error body, got %q", rr.Body.String())
		}
	})

	t.Run("passes through when session exists", func(t *testing.T) {
		sess := newTestSession("editor", true)
		inner, called := okHandler()
		handler := RequireAuth(inner)

		req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("returns 401 when context value has wrong type", func(t *testing.T) {
		inner, _ := okHandler()
		handler := RequireAuth(inner)

		req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
		req = req.WithContext(context.WithValue(req.Context(), SessionKey, "invalid"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
		}
	})
}

// ---------- Require2FA ----------

func TestRequire2FA(t *testing.T) {
	tests := []struct {
		name           string
		session        *session.Data
		wantCode       int
		wantNextCalled bool
	}{
		{
			name:           "returns 403 when TwoFADone is false",
			session:        newTestSession("admin", false),
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "passes through when TwoFADone is true",
			session:        newTestSession("admin", true),
			wantCode:       http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "passes through when session is nil (RequireAuth should catch this first)",
			session:        nil,
			wantCode:       http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()
			handler := Require2FA(inner)

			req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
			if tt.session != nil {
				req = req.WithContext(ctxWithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if *called != tt.wantNextCalled {
				t.Errorf("next handler called: got %v, want %v", *called, tt.wantNextCalled)
			}
			if rr.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

// ---------- RequireAdmin ----------

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name           string
		session        *session.Data
		wantCode       int
		wantNextCalled bool
	}{
		{
			name:           "returns 403 when session is nil",
			session:        nil,
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "returns 403 when role is editor",
			session:        newTestSession("editor", true),
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "returns 403 when role is empty",
			session:        newTestSession("", true),
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "passes through when role is admin",
			session:        newTestSession("admin", true),
			wantCode:       http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()
			handler := RequireAdmin(inner)

			req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
			if tt.session != nil {
				req = req.WithContext(ctxWithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if *called != tt.wantNextCalled {
				t.Errorf("next handler called: got %v, want %v", *called, tt.wantNextCalled)
			}
			if rr.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantCode)
			}

			// Verify the 403 body contains an error message.
			if tt.wantCode == http.StatusForbidden {
				body := rr.Body.String()
				if body == "" {
					t.Error("expected non-empty body for 403 response")
				}
			}
		})
	}
}

// TestDeleteChain exercises the full middleware stack guarding
// destructive admin routes: RequireAuth → Require2FA → RequireAdmin.
// Editors can pass the first two gates but not the third.
func TestDeleteChain(t *testing.T) {
	tests := []struct {
		name           string
		session        *session.Data
		wantCode       int
		wantNextCalled bool
	}{
		{
			name:           "no session is rejected at auth",
			session:        nil,
			wantCode:       http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "editor with 2FA cannot delete",
			session:        newTestSession("editor", true),
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "admin without 2FA cannot delete",
			session:        newTestSession("admin", false),
			wantCode:       http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:           "admin with 2FA can delete",
			session:        newTestSession("admin", true),
			wantCode:       http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()
			handler := RequireAuth(Require2FA(RequireAdmin(inner)))

			req := httptest.NewRequest(http.MethodDelete, "/admin/categories/some-id", nil)
			if tt.session != nil {
				req = req.WithContext(ctxWithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if *called != tt.wantNextCalled {
				t.Errorf("next handler called: got %v, want %v", *called, tt.wantNextCalled)
			}
			if rr.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}
