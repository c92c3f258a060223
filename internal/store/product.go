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

// ProductStore manages comparison products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, vendor, summary, url, category_id,
	country, active, sort_order, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Vendor, &p.Summary, &p.URL, &p.CategoryID,
		&p.Country, &p.Active, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive returns every active product, optionally restricted to a
// country. Products without a country are global and always included.
func (s *ProductStore) ListActive(country *string) ([]models.Product, error) {
	if country == nil {
		return s.listActive(`
			SELECT ` + productColumns + `
			FROM products
			WHERE active
			ORDER BY sort_order, name
		`)
	}
	return s.listActive(`
		SELECT `+productColumns+`
		FROM products
		WHERE active AND (country = $1 OR country IS NULL)
		ORDER BY sort_order, name
	`, *country)
}

// ListActiveByCategory returns the active products of one category,
// ordered for display, with the same optional country filter.
func (s *ProductStore) ListActiveByCategory(categoryID uuid.UUID, country *string) ([]models.Product, error) {
	if country == nil {
		return s.listActive(`
			SELECT `+productColumns+`
			FROM products
			WHERE active AND category_id = $1
			ORDER BY sort_order, name
		`, categoryID)
	}
	return s.listActive(`
		SELECT `+productColumns+`
		FROM products
		WHERE active AND category_id = $1 AND (country = $2 OR country IS NULL)
		ORDER BY sort_order, name
	`, categoryID, *country)
}

func (s *ProductStore) listActive(query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns all products for the admin panel.
func (s *ProductStore) List() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (name, slug, vendor, summary, url, category_id, country, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Vendor, p.Summary, p.URL, p.CategoryID, p.Country, p.Active, p.SortOrder,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies an existing product.
func (s *ProductStore) Update(p *models.Product) error {
	_, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, vendor = $3, summary = $4, url = $5,
			category_id = $6, country = $7, active = $8, sort_order = $9,
			updated_at = NOW()
		WHERE id = $10
	`, p.Name, p.Slug, p.Vendor, p.Summary, p.URL, p.CategoryID, p.Country, p.Active, p.SortOrder, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
