// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package taxonomy builds locale-resolved category trees and resolves
// hierarchical slug paths back to single categories. It operates purely on
// an in-memory snapshot of category records fetched once per request; it
// never queries the store itself.
package taxonomy

import (
	"github.com/google/uuid"

	"gigfin/internal/locale"
	"gigfin/internal/models"
)

// ParentRef is a summarized parent reference carried on child nodes.
// It never nests further.
type ParentRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ChildRef is the shallow child shape returned by slug-path resolution.
type ChildRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Level int       `json:"level"`
}

// Node is a category shaped for one request locale. Name, Slug, and
// Description are resolved for the requested locale; SlugEN and SlugPT
// carry both raw locale variants so clients can switch locales without
// another round trip.
type Node struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`

	SlugEN string `json:"slug_en"`
	SlugPT string `json:"slug_pt"`

	Level    int        `json:"level"`
	ParentID *uuid.UUID `json:"parent_id"`
	Parent   *ParentRef `json:"parent,omitempty"`

	SortOrder int     `json:"order"`
	Country   *string `json:"country"`
	Icon      *string `json:"icon,omitempty"`

	ShowInNavbar bool `json:"show_in_navbar"`
	ShowInFooter bool `json:"show_in_footer"`

	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	MetaKeywords    *string `json:"meta_keywords,omitempty"`

	Children []Node `json:"children"`

	ProductCount int `json:"products"`
	ArticleCount int `json:"articles"`
}

// NameFor returns the category name resolved for the given locale tag.
func NameFor(c *models.Category, tag string) string {
	return locale.Resolve(c.Name, c.NameEN, c.NamePT, tag)
}

// SlugFor returns the category slug resolved for the given locale tag.
func SlugFor(c *models.Category, tag string) string {
	return locale.Resolve(c.Slug, c.SlugEN, c.SlugPT, tag)
}

// Shape converts a category record into a locale-resolved node without
// children or parent summary. The same resolution rule is applied at every
// tree level; nothing is inherited from ancestors.
func Shape(c *models.Category, tag string) Node {
	return Node{
		ID:              c.ID,
		Name:            NameFor(c, tag),
		Slug:            SlugFor(c, tag),
		Description:     locale.Resolve(c.Description, c.DescriptionEN, c.DescriptionPT, tag),
		SlugEN:          locale.Resolve(c.Slug, c.SlugEN, c.SlugPT, locale.EnUS),
		SlugPT:          locale.Resolve(c.Slug, c.SlugEN, c.SlugPT, locale.PtBR),
		Level:           c.Level,
		ParentID:        c.ParentID,
		SortOrder:       c.SortOrder,
		Country:         c.Country,
		Icon:            c.Icon,
		ShowInNavbar:    c.ShowInNavbar,
		ShowInFooter:    c.ShowInFooter,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		MetaKeywords:    c.MetaKeywords,
		ProductCount:    c.ProductCount,
		ArticleCount:    c.ArticleCount,
	}
}
