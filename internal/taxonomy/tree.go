// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package taxonomy

import (
	"sort"

	"github.com/google/uuid"

	"gigfin/internal/models"
)

// DefaultMaxDepth is how many levels a built tree includes (root,
// children, grandchildren). The product taxonomy is capped at three
// levels; deeper records are simply not descended into.
const DefaultMaxDepth = 3

// MaxChainWalk bounds every parent-chain walk. It guards against cycles
// or malformed parent links in the snapshot.
const MaxChainWalk = 16

// index holds a per-request lookup structure over a category snapshot:
// an id → record map plus pre-sorted child lists, so repeated parent and
// child lookups are O(1) instead of linear scans.
type index struct {
	byID  map[uuid.UUID]*models.Category
	kids  map[uuid.UUID][]*models.Category
	roots []*models.Category
	tag   string
}

// newIndex builds the lookup structure. Children and roots are ordered by
// (sort_order asc, locale-resolved name asc). Records whose parent is
// missing from the snapshot stay reachable via byID but are not attached
// anywhere in the tree.
func newIndex(cats []models.Category, tag string) *index {
	ix := &index{
		byID: make(map[uuid.UUID]*models.Category, len(cats)),
		kids: make(map[uuid.UUID][]*models.Category),
		tag:  tag,
	}
	for i := range cats {
		c := &cats[i]
		ix.byID[c.ID] = c
	}
	for i := range cats {
		c := &cats[i]
		if c.ParentID == nil {
			ix.roots = append(ix.roots, c)
			continue
		}
		if _, ok := ix.byID[*c.ParentID]; ok {
			ix.kids[*c.ParentID] = append(ix.kids[*c.ParentID], c)
		}
	}

	sortCategories(ix.roots, tag)
	for id := range ix.kids {
		sortCategories(ix.kids[id], tag)
	}
	return ix
}

// sortCategories orders by sort_order ascending with the locale-resolved
// name as tie-break.
func sortCategories(cats []*models.Category, tag string) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return NameFor(cats[i], tag) < NameFor(cats[j], tag)
	})
}

// BuildTree shapes a category snapshot into an ordered slice of root
// nodes, descending at most maxDepth levels. Every node resolves its own
// locale fields independently. maxDepth <= 0 falls back to DefaultMaxDepth.
func BuildTree(cats []models.Category, tag string, maxDepth int) []Node {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	ix := newIndex(cats, tag)

	nodes := make([]Node, 0, len(ix.roots))
	for _, c := range ix.roots {
		nodes = append(nodes, ix.node(c, maxDepth-1))
	}
	return nodes
}

// node shapes one category with its parent summary and, while remaining
// depth allows, its recursively shaped children.
func (ix *index) node(c *models.Category, remaining int) Node {
	n := Shape(c, ix.tag)
	n.Parent = ix.parentRef(c)

	if remaining > 0 {
		for _, k := range ix.kids[c.ID] {
			n.Children = append(n.Children, ix.node(k, remaining-1))
		}
	}
	return n
}

// parentRef returns the summarized parent of c, or nil for roots and
// records whose parent is outside the snapshot.
func (ix *index) parentRef(c *models.Category) *ParentRef {
	if c.ParentID == nil {
		return nil
	}
	p, ok := ix.byID[*c.ParentID]
	if !ok {
		return nil
	}
	return &ParentRef{ID: p.ID, Name: NameFor(p, ix.tag), Slug: SlugFor(p, ix.tag)}
}

// chain reconstructs the root→leaf ancestor list for c, including c
// itself. Returns ok=false when the chain is broken (a parent id that is
// not in the snapshot) or exceeds MaxChainWalk steps (cycle guard); the
// caller then falls back to treating c as its own chain.
func (ix *index) chain(c *models.Category) ([]*models.Category, bool) {
	chain := []*models.Category{c}
	cur := c
	for steps := 0; cur.ParentID != nil; steps++ {
		if steps >= MaxChainWalk {
			return []*models.Category{c}, false
		}
		parent, ok := ix.byID[*cur.ParentID]
		if !ok {
			return []*models.Category{c}, false
		}
		chain = append([]*models.Category{parent}, chain...)
		cur = parent
	}
	return chain, true
}
