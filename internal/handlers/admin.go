// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gigfin/internal/cache"
	"gigfin/internal/middleware"
	"gigfin/internal/models"
	"gigfin/internal/slug"
	"gigfin/internal/store"
)

// Admin groups the content-management endpoints. Every write invalidates
// the response cache, since trees and menus for any locale could be
// affected.
type Admin struct {
	categories *store.CategoryStore
	articles   *store.ArticleStore
	products   *store.ProductStore
	respCache  *cache.ResponseCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(categories *store.CategoryStore, articles *store.ArticleStore, products *store.ProductStore, respCache *cache.ResponseCache) *Admin {
	return &Admin{
		categories: categories,
		articles:   articles,
		products:   products,
		respCache:  respCache,
	}
}

func (a *Admin) invalidate(r *http.Request) {
	if a.respCache != nil {
		a.respCache.InvalidateAll(r.Context())
	}
}

// idParam parses the {id} URL parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// ---------- Categories ----------

// ListCategories returns every category, including inactive ones.
//
// GET /admin/categories
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.categories.List()
	if err != nil {
		slog.Error("admin list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

// CreateCategory creates a category. A missing default slug is generated
// from the name; missing locale slugs are generated from the locale names.
//
// POST /admin/categories
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fe := fieldErrors{}
	fe.required("name", c.Name)
	fe.maxLen("name", c.Name, 200)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if c.SlugEN == nil && c.NameEN != nil {
		s := slug.Generate(*c.NameEN)
		c.SlugEN = &s
	}
	if c.SlugPT == nil && c.NamePT != nil {
		s := slug.Generate(*c.NamePT)
		c.SlugPT = &s
	}

	created, err := a.categories.Create(&c)
	if err != nil {
		slog.Error("create category failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a.invalidate(r)
	slog.Info("category created",
		"id", created.ID, "slug", created.Slug,
		"by", middleware.SessionFromCtx(r.Context()).Email,
	)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategory updates a category's fields. Reparenting goes through
// ReparentCategory, which revalidates nesting depth.
//
// PUT /admin/categories/{id}
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	existing, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = id

	fe := fieldErrors{}
	fe.required("name", c.Name)
	fe.required("slug", c.Slug)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if err := a.categories.Update(&c); err != nil {
		slog.Error("update category failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

// ReparentCategory moves a category under a new parent (or to the root
// when parent_id is null) and recomputes the level of its subtree.
//
// PUT /admin/categories/{id}/parent {"parent_id": ...}
func (a *Admin) ReparentCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req struct {
		ParentID *uuid.UUID `json:"parent_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.categories.Reparent(id, req.ParentID); err != nil {
		slog.Error("reparent category failed", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

// DeleteCategory removes a category. Children are re-rooted by the
// database (parent_id set to NULL), articles and products are detached.
//
// DELETE /admin/categories/{id}
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// ---------- Articles ----------

// ListArticles returns every article, drafts included.
//
// GET /admin/articles
func (a *Admin) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.articles.List()
	if err != nil {
		slog.Error("admin list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// CreateArticle creates an article authored by the logged-in user.
//
// POST /admin/articles
func (a *Admin) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var art models.Article
	if err := decodeJSON(r, &art); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if art.Locale == "" {
		art.Locale = "both"
	}
	if art.Status == "" {
		art.Status = models.ArticleStatusDraft
	}

	fe := fieldErrors{}
	fe.required("title", art.Title)
	fe.maxLen("title", art.Title, 300)
	fe.articleLocale("locale", art.Locale)
	fe.articleStatus("status", art.Status)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if art.Slug == "" {
		art.Slug = slug.Generate(art.Title)
	}

	sess := middleware.SessionFromCtx(r.Context())
	art.AuthorID = sess.UserID

	created, err := a.articles.Create(&art)
	if err != nil {
		slog.Error("create article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	slog.Info("article created", "id", created.ID, "slug", created.Slug, "by", sess.Email)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateArticle updates an article. Publishing a draft sets published_at.
//
// PUT /admin/articles/{id}
func (a *Admin) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	existing, err := a.articles.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	var art models.Article
	if err := decodeJSON(r, &art); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	art.ID = id
	art.AuthorID = existing.AuthorID

	fe := fieldErrors{}
	fe.required("title", art.Title)
	fe.required("slug", art.Slug)
	fe.articleLocale("locale", art.Locale)
	fe.articleStatus("status", art.Status)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if err := a.articles.Update(&art); err != nil {
		slog.Error("update article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

// DeleteArticle removes an article.
//
// DELETE /admin/articles/{id}
func (a *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := a.articles.Delete(id); err != nil {
		slog.Error("delete article failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// ---------- Products ----------

// ListProducts returns every product, inactive included.
//
// GET /admin/products
func (a *Admin) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.products.List()
	if err != nil {
		slog.Error("admin list products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// CreateProduct creates a comparison product.
//
// POST /admin/products
func (a *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fe := fieldErrors{}
	fe.required("name", p.Name)
	fe.maxLen("name", p.Name, 200)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if p.Slug == "" {
		p.Slug = slug.Generate(p.Name)
	}

	created, err := a.products.Create(&p)
	if err != nil {
		slog.Error("create product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProduct updates a product.
//
// PUT /admin/products/{id}
func (a *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	existing, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("find product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id

	fe := fieldErrors{}
	fe.required("name", p.Name)
	fe.required("slug", p.Slug)
	if !fe.ok() {
		fe.write(w)
		return
	}

	if err := a.products.Update(&p); err != nil {
		slog.Error("update product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

// DeleteProduct removes a product.
//
// DELETE /admin/products/{id}
func (a *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := a.products.Delete(id); err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.invalidate(r)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
