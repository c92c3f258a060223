// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// MenuArticleLimit caps how many articles the navigation menu shows.
const MenuArticleLimit = 50

// Article is a content item. The body is Markdown, converted to HTML at
// read time. An article belongs to at most one category; without a
// category its public path is a flat /articles/{slug}.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	MenuTitle *string   `json:"menu_title,omitempty"`

	Slug   string  `json:"slug"`
	SlugEN *string `json:"slug_en,omitempty"`
	SlugPT *string `json:"slug_pt,omitempty"`

	// Locale is "en-US", "pt-BR", or "both".
	Locale string `json:"locale"`

	Body    string  `json:"body"`
	Excerpt *string `json:"excerpt,omitempty"`

	CategoryID *uuid.UUID    `json:"category_id"`
	Status     ArticleStatus `json:"status"`

	ShowInMenu  bool `json:"show_in_menu"`
	RobotsIndex bool `json:"robots_index"`

	HeroImageKey *string `json:"hero_image_key,omitempty"`
	Keywords     *string `json:"keywords,omitempty"`

	AuthorID    uuid.UUID  `json:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// MenuLabel returns the short menu title when set, else the full title.
func (a *Article) MenuLabel() string {
	if a.MenuTitle != nil && *a.MenuTitle != "" {
		return *a.MenuTitle
	}
	return a.Title
}
