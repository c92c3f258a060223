// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import (
	"sort"
	"strings"
)

// Tool describes one calculator widget for the tool catalog and for
// matching tools to article content.
type Tool struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	NamePT string `json:"name_pt"`
	Path   string `json:"path"`

	// keywords drive article matching; bilingual, lowercase.
	keywords []string
}

// Tools is the calculator catalog.
var Tools = []Tool{
	{
		Slug: "fuel-cost", Name: "Fuel Cost Calculator",
		NamePT: "Calculadora de Combustível", Path: "/calculators/fuel-cost",
		keywords: []string{"fuel", "gas", "gasoline", "mileage", "combustível", "gasolina", "etanol", "km/l"},
	},
	{
		Slug: "break-even", Name: "Break-Even Calculator",
		NamePT: "Calculadora de Ponto de Equilíbrio", Path: "/calculators/break-even",
		keywords: []string{"break-even", "break even", "fixed costs", "ponto de equilíbrio", "custos fixos", "margem"},
	},
	{
		Slug: "daily-profit", Name: "Daily Profit Calculator",
		NamePT: "Calculadora de Lucro Diário", Path: "/calculators/daily-profit",
		keywords: []string{"profit", "earnings", "hourly", "lucro", "ganhos", "diária", "por hora", "rideshare", "motorista", "entregador"},
	},
}

// Match is a tool with its keyword-overlap score for a piece of text.
type Match struct {
	Tool
	Score int `json:"score"`
}

// MatchTools scores every catalog tool against the given text by counting
// keyword hits, returning the top max matches ordered by score descending
// (catalog order as tie-break). Text with no hits yields no matches.
func MatchTools(text string, max int) []Match {
	lower := strings.ToLower(text)

	var matches []Match
	for _, t := range Tools {
		score := 0
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, Match{Tool: t, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	return matches
}
