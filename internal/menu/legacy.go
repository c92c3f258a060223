// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package menu

// LegacyMenu re-derives the dynamic items under fixed semantic keys for
// consumers that predate the canonical items array. It is a transitional
// adapter at the output boundary; the assembler itself produces only the
// items structure.
type LegacyMenu struct {
	Insurance  *Section `json:"insurance,omitempty"`
	Comparison *Section `json:"comparison,omitempty"`
	Guides     *Section `json:"guides,omitempty"`
	Blog       *Section `json:"blog,omitempty"`
}

// legacySlugs lists, per fixed key, the root slugs older consumers expect
// in either language.
var legacySlugs = map[string][]string{
	"insurance":  {"insurance", "seguros"},
	"comparison": {"comparison", "comparador"},
	"guides":     {"guides", "guias"},
	"blog":       {"blog"},
}

// LegacyBlock maps the canonical items to the fixed-key legacy shape by
// matching each root's resolved slug against the expected slug lists.
// Sections with no matching root are omitted.
func LegacyBlock(items []Section) *LegacyMenu {
	find := func(key string) *Section {
		for i := range items {
			for _, s := range legacySlugs[key] {
				if items[i].Category.Slug == s {
					return &items[i]
				}
			}
		}
		return nil
	}

	return &LegacyMenu{
		Insurance:  find("insurance"),
		Comparison: find("comparison"),
		Guides:     find("guides"),
		Blog:       find("blog"),
	}
}
