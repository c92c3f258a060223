// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gigfin/internal/cache"
	"gigfin/internal/locale"
	"gigfin/internal/taxonomy"
)

// categoryCacheControl is sent on tree responses so CDNs and browsers
// can serve them without hitting the API for an hour.
const categoryCacheControl = "public, max-age=3600"

// ListCategories returns the full category tree for the requested locale
// and optional country. Defaults to en-US.
//
// GET /categories?locale=pt-BR&country=BR
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	tag := localeParam(r, locale.EnUS)
	country := p.country(r)

	key := cache.CategoriesKey(tag, countryKey(country))
	if p.respCache != nil {
		if body, ok := p.respCache.Get(r.Context(), key); ok {
			w.Header().Set("Cache-Control", categoryCacheControl)
			writeJSONBytes(w, http.StatusOK, body)
			return
		}
	}

	cats, err := p.categories.ListActive(country)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tree := taxonomy.BuildTree(cats, tag, taxonomy.DefaultMaxDepth)

	resp := map[string]any{
		"locale":     tag,
		"categories": tree,
	}

	body, err := json.Marshal(resp)
	if err != nil {
		slog.Error("categories encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if p.respCache != nil {
		p.respCache.Set(r.Context(), key, body)
	}

	// Freshness headers go on success only; a cached 500 would pin the
	// outage at the CDN for an hour.
	w.Header().Set("Cache-Control", categoryCacheControl)
	writeJSONBytes(w, http.StatusOK, body)
}

// CategoryBySlugPath resolves a slash-separated slug path to a single
// category. The path must spell out the full ancestry in the requested
// locale, e.g. /categories/seguros/motoristas with locale=pt-BR.
//
// GET /categories/{slug-path...}?locale=pt-BR
func (p *Public) CategoryBySlugPath(w http.ResponseWriter, r *http.Request) {
	tag := localeParam(r, locale.EnUS)
	path := chi.URLParam(r, "*")

	// Resolution is country-agnostic: a direct link to a category must
	// work for every visitor.
	cats, err := p.categories.ListActive(nil)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resolved, err := taxonomy.ResolveSlugPath(cats, path, tag)
	switch {
	case errors.Is(err, taxonomy.ErrInvalidPath):
		writeError(w, http.StatusBadRequest, "invalid category path")
		return
	case errors.Is(err, taxonomy.ErrNotFound):
		writeError(w, http.StatusNotFound, "category not found")
		return
	case errors.Is(err, taxonomy.ErrPathMismatch):
		writeError(w, http.StatusNotFound, "category path does not match its ancestry")
		return
	case err != nil:
		slog.Error("resolve slug path failed", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Cache-Control", categoryCacheControl)
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":   tag,
		"category": resolved,
	})
}
