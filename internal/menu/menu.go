// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package menu assembles the site navigation from a category snapshot and
// a capped list of menu-eligible articles. Navbar and footer visibility
// are independent flags, applied at every recursion level, so a deep
// category can be suppressed from one surface while its ancestors appear
// there. Like the taxonomy package, everything here is pure computation
// over per-request snapshots.
package menu

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"gigfin/internal/locale"
	"gigfin/internal/models"
	"gigfin/internal/taxonomy"
)

// Link is one article entry in the navigation menu, with its fully
// qualified localized URL path.
type Link struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	SlugEN     string     `json:"slug_en"`
	SlugPT     string     `json:"slug_pt"`
	Path       string     `json:"path"`
	Locale     string     `json:"locale"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// Section is one qualifying navbar root: the root node itself, its
// navbar- and footer-filtered subtrees, and the menu articles whose
// category lies in the root's subtree.
type Section struct {
	Category taxonomy.Node   `json:"category"`
	Navbar   []taxonomy.Node `json:"navbar"`
	Footer   []taxonomy.Node `json:"footer"`
	Articles []Link          `json:"articles"`
}

// Menu is the canonical navigation structure plus the legacy
// fixed-key block kept for older consumers.
type Menu struct {
	Items []Section `json:"items"`
	*LegacyMenu
}

// assembler indexes the menu-eligible category snapshot once so that
// article path building and subtree construction are map lookups.
type assembler struct {
	byID map[uuid.UUID]*models.Category
	kids map[uuid.UUID][]*models.Category
	tag  string
}

// Build assembles the menu for one request locale from snapshots the
// caller fetched (categories flagged for navbar or footer, plus up to
// MenuArticleLimit menu-eligible articles, newest first).
func Build(cats []models.Category, articles []models.Article, tag string) *Menu {
	a := newAssembler(cats, tag)

	links := make([]Link, 0, len(articles))
	for i := range articles {
		links = append(links, a.link(&articles[i]))
	}

	var roots []*models.Category
	for i := range cats {
		c := &cats[i]
		if c.Level == 0 && c.ShowInNavbar {
			roots = append(roots, c)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		if roots[i].SortOrder != roots[j].SortOrder {
			return roots[i].SortOrder < roots[j].SortOrder
		}
		return taxonomy.NameFor(roots[i], tag) < taxonomy.NameFor(roots[j], tag)
	})

	m := &Menu{Items: make([]Section, 0, len(roots))}
	attached := make(map[uuid.UUID]bool, len(links))

	for _, root := range roots {
		section := Section{
			Category: taxonomy.Shape(root, tag),
			Navbar:   a.subtree(root.ID, navbarVisible, 0),
			Footer:   a.subtree(root.ID, footerVisible, 0),
		}

		// Subtree membership ignores the descendants' own visibility
		// flags; only the root's navbar flag gates the section.
		descendants := a.descendants(root.ID)
		for _, l := range links {
			if l.CategoryID == nil || attached[l.ID] {
				continue
			}
			if descendants[*l.CategoryID] {
				attached[l.ID] = true
				section.Articles = append(section.Articles, l)
			}
		}

		m.Items = append(m.Items, section)
	}

	m.LegacyMenu = LegacyBlock(m.Items)
	return m
}

func newAssembler(cats []models.Category, tag string) *assembler {
	a := &assembler{
		byID: make(map[uuid.UUID]*models.Category, len(cats)),
		kids: make(map[uuid.UUID][]*models.Category),
		tag:  tag,
	}
	for i := range cats {
		c := &cats[i]
		a.byID[c.ID] = c
	}
	for i := range cats {
		c := &cats[i]
		if c.ParentID == nil {
			continue
		}
		if _, ok := a.byID[*c.ParentID]; ok {
			a.kids[*c.ParentID] = append(a.kids[*c.ParentID], c)
		}
	}
	for id := range a.kids {
		sort.SliceStable(a.kids[id], func(i, j int) bool {
			if a.kids[id][i].SortOrder != a.kids[id][j].SortOrder {
				return a.kids[id][i].SortOrder < a.kids[id][j].SortOrder
			}
			return taxonomy.NameFor(a.kids[id][i], tag) < taxonomy.NameFor(a.kids[id][j], tag)
		})
	}
	return a
}

func navbarVisible(c *models.Category) bool { return c.ShowInNavbar }
func footerVisible(c *models.Category) bool { return c.ShowInFooter }

// subtree builds the filtered child tree under parentID. The visibility
// filter is re-applied at every level. Depth is bounded as a cycle guard.
func (a *assembler) subtree(parentID uuid.UUID, visible func(*models.Category) bool, depth int) []taxonomy.Node {
	if depth >= taxonomy.MaxChainWalk {
		return nil
	}
	var nodes []taxonomy.Node
	for _, c := range a.kids[parentID] {
		if !visible(c) {
			continue
		}
		n := taxonomy.Shape(c, a.tag)
		n.Children = a.subtree(c.ID, visible, depth+1)
		nodes = append(nodes, n)
	}
	return nodes
}

// descendants returns the id set of a root's whole subtree, root
// included, regardless of visibility flags.
func (a *assembler) descendants(rootID uuid.UUID) map[uuid.UUID]bool {
	seen := map[uuid.UUID]bool{rootID: true}
	queue := []uuid.UUID{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, c := range a.kids[id] {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			queue = append(queue, c.ID)
		}
	}
	return seen
}

// link shapes one article with its localized URL path: the ancestor
// category slugs root→leaf followed by the article's own resolved slug.
// Uncategorized articles live under a flat /articles/ prefix.
func (a *assembler) link(art *models.Article) Link {
	slug := locale.Resolve(art.Slug, art.SlugEN, art.SlugPT, a.tag)
	l := Link{
		ID:         art.ID,
		Title:      art.MenuLabel(),
		Slug:       slug,
		SlugEN:     locale.Resolve(art.Slug, art.SlugEN, art.SlugPT, locale.EnUS),
		SlugPT:     locale.Resolve(art.Slug, art.SlugEN, art.SlugPT, locale.PtBR),
		Locale:     art.Locale,
		CategoryID: art.CategoryID,
	}

	if art.CategoryID == nil {
		l.Path = "/articles/" + slug
		return l
	}

	// Walk the parent chain through the working set, prepending each
	// ancestor so the final order is root→leaf. The walk is bounded in
	// case of malformed parent links.
	var ancestors []string
	cur, ok := a.byID[*art.CategoryID]
	for steps := 0; ok && steps < taxonomy.MaxChainWalk; steps++ {
		ancestors = append([]string{taxonomy.SlugFor(cur, a.tag)}, ancestors...)
		if cur.ParentID == nil {
			break
		}
		cur, ok = a.byID[*cur.ParentID]
	}

	l.Path = "/" + strings.Join(append(ancestors, slug), "/")
	return l
}
