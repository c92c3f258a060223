// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package taxonomy

import (
	"errors"
	"strings"

	"gigfin/internal/models"
)

// Resolution failures, mapped to HTTP statuses at the handler boundary
// (400, 404, 404 respectively).
var (
	ErrInvalidPath  = errors.New("taxonomy: invalid slug path")
	ErrNotFound     = errors.New("taxonomy: category not found")
	ErrPathMismatch = errors.New("taxonomy: slug path mismatch")
)

// Resolved is the result of a successful slug-path resolution: the leaf
// node plus its reconstructed full path and shallow immediate children.
type Resolved struct {
	Node
	FullPath string     `json:"full_path"`
	Children []ChildRef `json:"children"`
}

// ResolveSlugPath resolves a slash-delimited slug path like
// "insurance/rideshare" to a single category.
//
// The match runs in two phases: the last (most specific) segment is
// matched against default and locale slugs of the snapshot, then the
// candidate's ancestor chain is reconstructed and verified segment by
// segment, root to leaf. Slugs are only unique within a locale and
// sibling set, so the chain check is what catches a correct leaf slug
// hanging under the wrong parent.
func ResolveSlugPath(cats []models.Category, slugPath, tag string) (*Resolved, error) {
	segments := splitPath(slugPath)
	if len(segments) == 0 {
		return nil, ErrInvalidPath
	}

	ix := newIndex(cats, tag)
	leaf := segments[len(segments)-1]

	var candidates []*models.Category
	for i := range cats {
		c := &cats[i]
		if c.Slug == leaf || SlugFor(c, tag) == leaf {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	for _, c := range candidates {
		chain, ok := ix.chain(c)

		// A single segment is accepted immediately; the chain is only
		// used to report the full path.
		if len(segments) == 1 {
			return ix.resolved(c, chain), nil
		}

		if !ok || len(chain) != len(segments) {
			continue
		}
		if chainMatches(chain, segments, tag) {
			return ix.resolved(c, chain), nil
		}
	}

	// The leaf slug exists somewhere in the tree, just not under the
	// supplied ancestors.
	return nil, ErrPathMismatch
}

// chainMatches verifies each ancestor's locale-resolved slug against the
// corresponding path segment, in root→leaf order.
func chainMatches(chain []*models.Category, segments []string, tag string) bool {
	for i, anc := range chain {
		if SlugFor(anc, tag) != segments[i] {
			return false
		}
	}
	return true
}

// resolved shapes the final response node: resolved leaf, full path built
// from the ancestor chain, and shallow immediate children.
func (ix *index) resolved(c *models.Category, chain []*models.Category) *Resolved {
	n := Shape(c, ix.tag)
	n.Parent = ix.parentRef(c)

	slugs := make([]string, 0, len(chain))
	for _, anc := range chain {
		slugs = append(slugs, SlugFor(anc, ix.tag))
	}

	children := make([]ChildRef, 0, len(ix.kids[c.ID]))
	for _, k := range ix.kids[c.ID] {
		children = append(children, ChildRef{
			ID:    k.ID,
			Name:  NameFor(k, ix.tag),
			Slug:  SlugFor(k, ix.tag),
			Level: k.Level,
		})
	}

	return &Resolved{
		Node:     n,
		FullPath: strings.Join(slugs, "/"),
		Children: children,
	}
}

// splitPath splits a slug path on "/", dropping empty segments so that
// leading, trailing, and doubled slashes are tolerated.
func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
