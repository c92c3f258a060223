// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"gigfin/internal/models"
)

// ListProducts returns active products, optionally scoped to a category.
//
// GET /products?category={id}&country=BR
func (p *Public) ListProducts(w http.ResponseWriter, r *http.Request) {
	country := p.country(r)

	var (
		products []models.Product
		err      error
	)
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		products, err = p.products.ListActiveByCategory(id, country)
	} else {
		products, err = p.products.ListActive(country)
	}
	if err != nil {
		slog.Error("list products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
	})
}
