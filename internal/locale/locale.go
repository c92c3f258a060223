// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package locale defines the two supported locale tags and the single
// field-resolution rule used at every level of the category tree:
// a locale override wins when present and non-empty, otherwise the
// default field applies. Unrecognized tags resolve to the defaults.
package locale

// Supported locale tags. ArticleBoth is an article-only sentinel meaning
// the item applies to both locales; it is never a valid request locale.
const (
	EnUS        = "en-US"
	PtBR        = "pt-BR"
	ArticleBoth = "both"
)

// Recognized returns true for the two supported request locales.
func Recognized(tag string) bool {
	return tag == EnUS || tag == PtBR
}

// Resolve picks the locale-specific value for the given tag, falling back
// to the default when the override is absent or empty. en and pt may be nil.
func Resolve(def string, en, pt *string, tag string) string {
	switch tag {
	case EnUS:
		if en != nil && *en != "" {
			return *en
		}
	case PtBR:
		if pt != nil && *pt != "" {
			return *pt
		}
	}
	return def
}

// Matches reports whether content tagged with contentLocale should be
// served for the requested tag. Content tagged "both" matches everything.
func Matches(contentLocale, tag string) bool {
	return contentLocale == tag || contentLocale == ArticleBoth
}
