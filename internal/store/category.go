// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gigfin/internal/models"
)

// CategoryStore manages taxonomy categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description,
	name_en, slug_en, description_en, name_pt, slug_pt, description_pt,
	level, parent_id, sort_order, country,
	show_in_navbar, show_in_footer, active, icon,
	meta_title, meta_description, meta_keywords,
	created_at, updated_at`

// scanCategory scans a plain category row (no counts).
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.NameEN, &c.SlugEN, &c.DescriptionEN, &c.NamePT, &c.SlugPT, &c.DescriptionPT,
		&c.Level, &c.ParentID, &c.SortOrder, &c.Country,
		&c.ShowInNavbar, &c.ShowInFooter, &c.Active, &c.Icon,
		&c.MetaTitle, &c.MetaDescription, &c.MetaKeywords,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// listWithCounts runs a category list query that appends product and
// article counts to the category columns.
func (s *CategoryStore) listWithCounts(where string, args ...any) ([]models.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description,
		       c.name_en, c.slug_en, c.description_en, c.name_pt, c.slug_pt, c.description_pt,
		       c.level, c.parent_id, c.sort_order, c.country,
		       c.show_in_navbar, c.show_in_footer, c.active, c.icon,
		       c.meta_title, c.meta_description, c.meta_keywords,
		       c.created_at, c.updated_at,
		       COUNT(DISTINCT p.id) AS product_count,
		       COUNT(DISTINCT a.id) AS article_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.active
		LEFT JOIN articles a ON a.category_id = c.id AND a.status = 'published'
		WHERE ` + where + `
		GROUP BY c.id
		ORDER BY c.sort_order, c.name
	`
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description,
			&c.NameEN, &c.SlugEN, &c.DescriptionEN, &c.NamePT, &c.SlugPT, &c.DescriptionPT,
			&c.Level, &c.ParentID, &c.SortOrder, &c.Country,
			&c.ShowInNavbar, &c.ShowInFooter, &c.Active, &c.Icon,
			&c.MetaTitle, &c.MetaDescription, &c.MetaKeywords,
			&c.CreatedAt, &c.UpdatedAt,
			&c.ProductCount, &c.ArticleCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListActive returns all active categories with content counts,
// optionally restricted to one country (country == NULL records always
// qualify). Ordered by (sort_order, name).
func (s *CategoryStore) ListActive(country *string) ([]models.Category, error) {
	if country == nil {
		return s.listWithCounts(`c.active`)
	}
	return s.listWithCounts(`c.active AND (c.country = $1 OR c.country IS NULL)`, *country)
}

// ListMenuEligible returns active categories flagged for the navbar or
// footer, with the same optional country filter as ListActive.
func (s *CategoryStore) ListMenuEligible(country *string) ([]models.Category, error) {
	if country == nil {
		return s.listWithCounts(`c.active AND (c.show_in_navbar OR c.show_in_footer)`)
	}
	return s.listWithCounts(
		`c.active AND (c.show_in_navbar OR c.show_in_footer) AND (c.country = $1 OR c.country IS NULL)`,
		*country,
	)
}

// List returns every category regardless of flags, for the admin panel.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it. The level is derived from
// the parent so the child-level invariant holds at the write boundary.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	level := 0
	if c.ParentID != nil {
		parent, err := s.FindByID(*c.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("create category: parent %s not found", c.ParentID)
		}
		if parent.Level >= models.MaxCategoryLevel {
			return nil, fmt.Errorf("create category: parent %s is at the maximum nesting level", c.ParentID)
		}
		level = parent.Level + 1
	}

	row := s.db.QueryRow(`
		INSERT INTO categories (
			name, slug, description,
			name_en, slug_en, description_en, name_pt, slug_pt, description_pt,
			level, parent_id, sort_order, country,
			show_in_navbar, show_in_footer, active, icon,
			meta_title, meta_description, meta_keywords
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description,
		c.NameEN, c.SlugEN, c.DescriptionEN, c.NamePT, c.SlugPT, c.DescriptionPT,
		level, c.ParentID, c.SortOrder, c.Country,
		c.ShowInNavbar, c.ShowInFooter, c.Active, c.Icon,
		c.MetaTitle, c.MetaDescription, c.MetaKeywords,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category. The parent link and level are not
// changed here; re-parenting goes through Reparent.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, slug = $2, description = $3,
			name_en = $4, slug_en = $5, description_en = $6,
			name_pt = $7, slug_pt = $8, description_pt = $9,
			sort_order = $10, country = $11,
			show_in_navbar = $12, show_in_footer = $13, active = $14, icon = $15,
			meta_title = $16, meta_description = $17, meta_keywords = $18,
			updated_at = NOW()
		WHERE id = $19
	`,
		c.Name, c.Slug, c.Description,
		c.NameEN, c.SlugEN, c.DescriptionEN,
		c.NamePT, c.SlugPT, c.DescriptionPT,
		c.SortOrder, c.Country,
		c.ShowInNavbar, c.ShowInFooter, c.Active, c.Icon,
		c.MetaTitle, c.MetaDescription, c.MetaKeywords,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Reparent moves a category under a new parent (or to the root when
// parentID is nil), recomputing its level.
func (s *CategoryStore) Reparent(id uuid.UUID, parentID *uuid.UUID) error {
	level := 0
	if parentID != nil {
		parent, err := s.FindByID(*parentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("reparent category: parent %s not found", parentID)
		}
		if parent.Level >= models.MaxCategoryLevel {
			return fmt.Errorf("reparent category: parent %s is at the maximum nesting level", parentID)
		}
		level = parent.Level + 1
	}

	_, err := s.db.Exec(`
		UPDATE categories SET parent_id = $1, level = $2, updated_at = NOW() WHERE id = $3
	`, parentID, level, id)
	if err != nil {
		return fmt.Errorf("reparent category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Children are re-parented to the root
// (ON DELETE SET NULL).
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
