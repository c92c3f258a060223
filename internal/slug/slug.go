// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary
// strings. Portuguese titles carry accents (ç, ã, é), so generation is
// delegated to gosimple/slug which transliterates them instead of
// stripping the characters outright.
package slug

import (
	gslug "github.com/gosimple/slug"
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Seguros para Motoristas de Aplicativo" →
// "seguros-para-motoristas-de-aplicativo"
func Generate(s string) string {
	return gslug.Make(s)
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	return s != "" && gslug.IsSlug(s)
}
