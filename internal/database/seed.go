package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user, the bilingual category tree, and a handful of sample
// articles and products. It is idempotent — tables that already hold
// rows are left alone.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedContent(db); err != nil {
		return err
	}
	return nil
}

// seedAdmin creates the default admin user if no users exist. The admin
// will be prompted to set up 2FA on first login (totp_enabled = false).
func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@gigfin.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@gigfin.local",
		"password", "admin",
	)
	return nil
}

// seedCategory describes one row of the seeded category tree.
type seedCategory struct {
	name, slug     string
	namePT, slugPT string
	parent         string // slug of the parent, "" for roots
	order          int
	navbar, footer bool
}

var seedTree = []seedCategory{
	{name: "Insurance", slug: "insurance", namePT: "Seguros", slugPT: "seguros", order: 1, navbar: true, footer: true},
	{name: "Rideshare Drivers", slug: "rideshare", namePT: "Motoristas de Aplicativo", slugPT: "motoristas", parent: "insurance", order: 1, navbar: true, footer: true},
	{name: "Delivery Couriers", slug: "delivery", namePT: "Entregadores", slugPT: "entregadores", parent: "insurance", order: 2, navbar: true, footer: true},
	{name: "Motorcycle", slug: "motorcycle", namePT: "Motos", slugPT: "motos", parent: "rideshare", order: 1, navbar: true},
	{name: "Comparison", slug: "comparison", namePT: "Comparador", slugPT: "comparador", order: 2, navbar: true, footer: true},
	{name: "Guides", slug: "guides", namePT: "Guias", slugPT: "guias", order: 3, navbar: true, footer: true},
	{name: "Blog", slug: "blog", namePT: "Blog", slugPT: "blog", order: 4, navbar: true},
}

// seedCategories inserts the default bilingual category tree if the
// categories table is empty. Children are inserted after their parents
// so levels can be derived in order.
func seedCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	ids := map[string]uuid.UUID{}
	levels := map[string]int{}

	for _, c := range seedTree {
		var parentID *uuid.UUID
		level := 0
		if c.parent != "" {
			id, ok := ids[c.parent]
			if !ok {
				return fmt.Errorf("seed category %q: parent %q not inserted yet", c.slug, c.parent)
			}
			parentID = &id
			level = levels[c.parent] + 1
		}

		var id uuid.UUID
		err := db.QueryRow(`
			INSERT INTO categories (name, slug, name_pt, slug_pt, level, parent_id, sort_order, show_in_navbar, show_in_footer, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
			RETURNING id
		`, c.name, c.slug, c.namePT, c.slugPT, level, parentID, c.order, c.navbar, c.footer).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.slug, err)
		}
		ids[c.slug] = id
		levels[c.slug] = level
	}

	slog.Info("database seeded with category tree", "categories", len(seedTree))
	return nil
}

// seedContent inserts a few published articles and products once the
// tree exists. Skipped when articles already exist.
func seedContent(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return fmt.Errorf("seed check articles: %w", err)
	}
	if count > 0 {
		return nil
	}

	var authorID uuid.UUID
	if err := db.QueryRow("SELECT id FROM users ORDER BY created_at ASC LIMIT 1").Scan(&authorID); err != nil {
		return fmt.Errorf("seed find author: %w", err)
	}

	var rideshareID uuid.UUID
	if err := db.QueryRow("SELECT id FROM categories WHERE slug = 'rideshare'").Scan(&rideshareID); err != nil {
		return fmt.Errorf("seed find rideshare category: %w", err)
	}

	articles := []struct {
		title, slug, slugPT, locale, body string
	}{
		{
			title:  "Best Insurance for Rideshare Drivers",
			slug:   "best-insurance-rideshare-drivers",
			slugPT: "melhor-seguro-motoristas-aplicativo",
			locale: "both",
			body:   "## Overview\n\nWhat rideshare drivers should look for in a policy.",
		},
		{
			title:  "How Deductibles Work",
			slug:   "how-deductibles-work",
			slugPT: "como-funciona-franquia",
			locale: "both",
			body:   "## Deductibles\n\nThe amount you pay before coverage kicks in.",
		},
	}
	for _, a := range articles {
		_, err := db.Exec(`
			INSERT INTO articles (title, slug, slug_pt, locale, body, category_id, status, show_in_menu, robots_index, author_id, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, 'published', TRUE, TRUE, $7, NOW())
		`, a.title, a.slug, a.slugPT, a.locale, a.body, rideshareID, authorID)
		if err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.slug, err)
		}
	}

	products := []struct {
		name, slug, vendor string
	}{
		{name: "DriveCover Basic", slug: "drivecover-basic", vendor: "DriveCover"},
		{name: "GigShield Plus", slug: "gigshield-plus", vendor: "GigShield"},
	}
	for i, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (name, slug, vendor, category_id, active, sort_order)
			VALUES ($1, $2, $3, $4, TRUE, $5)
		`, p.name, p.slug, p.vendor, rideshareID, i+1)
		if err != nil {
			return fmt.Errorf("seed insert product %q: %w", p.slug, err)
		}
	}

	slog.Info("database seeded with sample content",
		"articles", len(articles),
		"products", len(products),
	)
	return nil
}
