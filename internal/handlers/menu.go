// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"gigfin/internal/cache"
	"gigfin/internal/locale"
	"gigfin/internal/menu"
	"gigfin/internal/models"
)

// menuCacheControl lets clients keep serving a stale menu while they
// refresh it in the background. Menus change rarely.
const menuCacheControl = "public, max-age=3600, stale-while-revalidate=86400"

// Menu returns the assembled navigation payload: navbar and footer trees
// per section plus menu-eligible article links. The primary audience is
// Brazilian, so the locale defaults to pt-BR.
//
// GET /menu?locale=pt-BR&country=BR
func (p *Public) Menu(w http.ResponseWriter, r *http.Request) {
	tag := localeParam(r, locale.PtBR)
	country := p.country(r)

	key := cache.MenuKey(tag, countryKey(country))
	if p.respCache != nil {
		if body, ok := p.respCache.Get(r.Context(), key); ok {
			w.Header().Set("Cache-Control", menuCacheControl)
			writeJSONBytes(w, http.StatusOK, body)
			return
		}
	}

	// Categories and articles come from independent tables; fetch them
	// concurrently.
	var (
		cats     []models.Category
		articles []models.Article
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		cats, err = p.categories.ListMenuEligible(country)
		return err
	})
	g.Go(func() error {
		var err error
		articles, err = p.articles.ListMenuEligible(tag)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("menu fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	assembled := menu.Build(cats, articles, tag)

	resp := map[string]any{
		"locale":    tag,
		"menu":      assembled,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		slog.Error("menu encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if p.respCache != nil {
		p.respCache.Set(r.Context(), key, body)
	}

	// Success only. With stale-while-revalidate a cached error would
	// outlive the outage by a day.
	w.Header().Set("Cache-Control", menuCacheControl)
	writeJSONBytes(w, http.StatusOK, body)
}
