// Package router sets up all HTTP routes and middleware chains for the
// GigFin API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gigfin/internal/handlers"
	"gigfin/internal/middleware"
	"gigfin/internal/session"
)

// Handlers bundles the handler groups wired into the router.
type Handlers struct {
	Public      *handlers.Public
	Calculators *handlers.Calculators
	Auth        *handlers.Auth
	Admin       *handlers.Admin
	Media       *handlers.Media
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Public content API.
	r.Get("/categories", h.Public.ListCategories)
	r.Get("/categories/*", h.Public.CategoryBySlugPath)
	r.Get("/menu", h.Public.Menu)
	r.Get("/articles/{slug}", h.Public.ArticleBySlug)
	r.Get("/products", h.Public.ListProducts)

	// Calculators.
	r.Route("/calculators", func(r chi.Router) {
		r.Get("/", h.Calculators.List)
		r.Get("/fuel-cost", h.Calculators.FuelCost)
		r.Get("/break-even", h.Calculators.BreakEven)
		r.Get("/daily-profit", h.Calculators.DailyProfit)
	})

	// Admin API — session-backed authentication with 2FA.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.LoadSession(sessionStore))

		// Login is rate-limited to slow down credential stuffing.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.With(loginLimiter.Middleware).Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", h.Auth.TwoFASetup)
			r.Post("/2fa/verify", h.Auth.TwoFAVerify)
		})

		// Authenticated + 2FA-verified admin area. Deletes are further
		// restricted to the admin role; editors manage content but
		// cannot destroy it.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.Admin.ListCategories)
				r.Post("/", h.Admin.CreateCategory)
				r.Put("/{id}", h.Admin.UpdateCategory)
				r.Put("/{id}/parent", h.Admin.ReparentCategory)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Admin.DeleteCategory)
			})

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", h.Admin.ListArticles)
				r.Post("/", h.Admin.CreateArticle)
				r.Put("/{id}", h.Admin.UpdateArticle)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Admin.DeleteArticle)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Admin.ListProducts)
				r.Post("/", h.Admin.CreateProduct)
				r.Put("/{id}", h.Admin.UpdateProduct)
				r.With(middleware.RequireAdmin).Delete("/{id}", h.Admin.DeleteProduct)
			})

			r.Route("/media", func(r chi.Router) {
				r.Post("/", h.Media.Upload)
				r.With(middleware.RequireAdmin).Delete("/", h.Media.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
