// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"gigfin/internal/cache"
	"gigfin/internal/locale"
	"gigfin/internal/store"
)

// Public groups the unauthenticated JSON endpoints: category trees,
// slug-path resolution, menus, articles and products.
type Public struct {
	categories     *store.CategoryStore
	articles       *store.ArticleStore
	products       *store.ProductStore
	respCache      *cache.ResponseCache
	defaultCountry string
}

// NewPublic creates a new Public handler group. respCache may be nil,
// in which case every request assembles its response from the database.
// defaultCountry scopes listings when the client sends no country; ""
// disables the fallback.
func NewPublic(categories *store.CategoryStore, articles *store.ArticleStore, products *store.ProductStore, respCache *cache.ResponseCache, defaultCountry string) *Public {
	return &Public{
		categories:     categories,
		articles:       articles,
		products:       products,
		respCache:      respCache,
		defaultCountry: defaultCountry,
	}
}

// localeParam returns the validated locale query parameter, or def when
// the parameter is missing or not a recognized tag.
func localeParam(r *http.Request, def string) string {
	tag := r.URL.Query().Get("locale")
	if !locale.Recognized(tag) {
		return def
	}
	return tag
}

// country returns the country query parameter, falling back to the
// configured default. Nil means no country scoping at all.
func (p *Public) country(r *http.Request) *string {
	if c := r.URL.Query().Get("country"); c != "" {
		return &c
	}
	if p.defaultCountry != "" {
		c := p.defaultCountry
		return &c
	}
	return nil
}

func countryKey(country *string) string {
	if country == nil {
		return ""
	}
	return *country
}
