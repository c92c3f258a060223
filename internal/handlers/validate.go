// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"gigfin/internal/locale"
	"gigfin/internal/models"
)

// fieldErrors collects per-field validation messages for a 422 response.
type fieldErrors map[string]string

func (fe fieldErrors) ok() bool { return len(fe) == 0 }

// write sends the collected errors as a 422 response. Call only when
// ok() is false.
func (fe fieldErrors) write(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fe,
	})
}

func (fe fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = "is required"
	}
}

func (fe fieldErrors) maxLen(field, value string, max int) {
	if len(value) > max {
		fe[field] = "is too long"
	}
}

// articleLocale validates the locale column of an article, which admits
// "both" in addition to the concrete tags.
func (fe fieldErrors) articleLocale(field, value string) {
	if value != locale.ArticleBoth && !locale.Recognized(value) {
		fe[field] = "must be en-US, pt-BR or both"
	}
}

func (fe fieldErrors) articleStatus(field string, value models.ArticleStatus) {
	if value != models.ArticleStatusDraft && value != models.ArticleStatusPublished {
		fe[field] = "must be draft or published"
	}
}
