// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gigfin/internal/calc"
	"gigfin/internal/locale"
	"gigfin/internal/markdown"
)

// maxRelatedTools caps how many calculator suggestions ride along with
// an article.
const maxRelatedTools = 3

// ArticleBySlug returns a published article by any of its slug variants,
// with the Markdown body rendered to HTML and related calculator tools
// matched from the article text.
//
// GET /articles/{slug}?locale=pt-BR
func (p *Public) ArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := p.articles.FindPublishedBySlug(slug)
	if err != nil {
		slog.Error("find article failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	// When a locale is requested, locale-restricted articles outside it
	// are hidden.
	if tag := r.URL.Query().Get("locale"); locale.Recognized(tag) && !locale.Matches(article.Locale, tag) {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	html, err := markdown.ToHTML(article.Body)
	if err != nil {
		slog.Error("article render failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	matchText := article.Title + " " + article.Body
	if article.Keywords != nil {
		matchText += " " + *article.Keywords
	}
	tools := calc.MatchTools(matchText, maxRelatedTools)

	if !article.RobotsIndex {
		w.Header().Set("X-Robots-Tag", "noindex")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"article": article,
		"html":    html,
		"tools":   tools,
	})
}
