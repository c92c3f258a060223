// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gigfin/internal/models"
)

// ArticleStore manages articles in the database.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, menu_title, slug, slug_en, slug_pt, locale,
	body, excerpt, category_id, status, show_in_menu, robots_index,
	hero_image_key, keywords, author_id, published_at, created_at, updated_at`

// scanArticle scans a row into an Article struct.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.Title, &a.MenuTitle, &a.Slug, &a.SlugEN, &a.SlugPT, &a.Locale,
		&a.Body, &a.Excerpt, &a.CategoryID, &a.Status, &a.ShowInMenu, &a.RobotsIndex,
		&a.HeroImageKey, &a.Keywords, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListMenuEligible returns the newest published articles flagged for menu
// display and indexing, matching the requested locale or tagged "both".
// The result set is capped at models.MenuArticleLimit.
func (s *ArticleStore) ListMenuEligible(tag string) ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE status = 'published'
		  AND show_in_menu AND robots_index
		  AND locale IN ($1, 'both')
		ORDER BY published_at DESC
		LIMIT $2
	`, tag, models.MenuArticleLimit)
	if err != nil {
		return nil, fmt.Errorf("list menu articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindPublishedBySlug retrieves a published article matching any of its
// slug variants. Returns nil if not found.
func (s *ArticleStore) FindPublishedBySlug(slug string) (*models.Article, error) {
	row := s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE status = 'published'
		  AND (slug = $1 OR slug_en = $1 OR slug_pt = $1)
		LIMIT 1
	`, slug)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// FindByID retrieves an article by ID regardless of status.
// Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// List returns all articles newest-first, for the admin panel.
func (s *ArticleStore) List() ([]models.Article, error) {
	rows, err := s.db.Query(`SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// Create inserts a new article and returns it. Published articles get a
// published_at timestamp at insert time.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	var publishedAt *time.Time
	if a.Status == models.ArticleStatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	row := s.db.QueryRow(`
		INSERT INTO articles (
			title, menu_title, slug, slug_en, slug_pt, locale,
			body, excerpt, category_id, status, show_in_menu, robots_index,
			hero_image_key, keywords, author_id, published_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+articleColumns,
		a.Title, a.MenuTitle, a.Slug, a.SlugEN, a.SlugPT, a.Locale,
		a.Body, a.Excerpt, a.CategoryID, a.Status, a.ShowInMenu, a.RobotsIndex,
		a.HeroImageKey, a.Keywords, a.AuthorID, publishedAt,
	)
	result, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return result, nil
}

// Update modifies an existing article. A draft transitioning to published
// gets its published_at set once; re-saving keeps the original timestamp.
func (s *ArticleStore) Update(a *models.Article) error {
	_, err := s.db.Exec(`
		UPDATE articles SET
			title = $1, menu_title = $2, slug = $3, slug_en = $4, slug_pt = $5, locale = $6,
			body = $7, excerpt = $8, category_id = $9, status = $10,
			show_in_menu = $11, robots_index = $12, hero_image_key = $13, keywords = $14,
			published_at = CASE
				WHEN $10 = 'published' AND published_at IS NULL THEN NOW()
				WHEN $10 = 'draft' THEN NULL
				ELSE published_at
			END,
			updated_at = NOW()
		WHERE id = $15
	`,
		a.Title, a.MenuTitle, a.Slug, a.SlugEN, a.SlugPT, a.Locale,
		a.Body, a.Excerpt, a.CategoryID, a.Status,
		a.ShowInMenu, a.RobotsIndex, a.HeroImageKey, a.Keywords,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
