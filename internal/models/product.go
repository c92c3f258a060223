// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a financial product featured on the comparison pages
// (an insurance plan, a banking account, a tax tool). Products are
// editorial records; signup happens on the vendor's site.
type Product struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Vendor     string     `json:"vendor"`
	Summary    string     `json:"summary"`
	URL        string     `json:"url"`
	CategoryID *uuid.UUID `json:"category_id"`
	Country    *string    `json:"country"`
	Active     bool       `json:"active"`
	SortOrder  int        `json:"sort_order"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
