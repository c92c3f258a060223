// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryLevel is the deepest supported nesting level.
// Level 0 is a root; a child's level is always its parent's level + 1.
const MaxCategoryLevel = 2

// Category is one node in the site taxonomy (insurance, banking, tax
// tools, ...). Name, slug, and description carry a default value plus
// optional per-locale overrides for en-US and pt-BR. Empty overrides fall
// back to the default at resolution time.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`

	NameEN        *string `json:"name_en,omitempty"`
	SlugEN        *string `json:"slug_en,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	NamePT        *string `json:"name_pt,omitempty"`
	SlugPT        *string `json:"slug_pt,omitempty"`
	DescriptionPT *string `json:"description_pt,omitempty"`

	Level     int        `json:"level"`
	ParentID  *uuid.UUID `json:"parent_id"`
	SortOrder int        `json:"sort_order"`

	// Country restricts the category to one market. Nil means all countries.
	Country *string `json:"country"`

	ShowInNavbar bool    `json:"show_in_navbar"`
	ShowInFooter bool    `json:"show_in_footer"`
	Active       bool    `json:"active"`
	Icon         *string `json:"icon,omitempty"`

	// SEO metadata, passed through untouched.
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	MetaKeywords    *string `json:"meta_keywords,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Denormalized counts populated by store list queries.
	ProductCount int `json:"product_count"`
	ArticleCount int `json:"article_count"`
}

// IsRoot returns true for top-level categories.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
