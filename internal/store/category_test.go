package store

import (
	"testing"

	"github.com/google/uuid"

	"gigfin/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCategoryStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-cat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	created, err := s.Create(&models.Category{
		Name:   "Test Category",
		Slug:   slug,
		NamePT: strPtr("Categoria de Teste"),
		SlugPT: strPtr(slug + "-pt"),
		Active: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Level != 0 {
		t.Errorf("level: got %d, want 0 for a root", created.Level)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected category, got nil")
	}
	if found.SlugPT == nil || *found.SlugPT != slug+"-pt" {
		t.Errorf("slug_pt: got %v", found.SlugPT)
	}
}

func TestCategoryStoreChildLevel(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	parentSlug := "test-parent-" + uuid.NewString()[:8]
	childSlug := "test-child-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, childSlug, parentSlug) })

	parent, err := s.Create(&models.Category{Name: "Parent", Slug: parentSlug, Active: true})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	child, err := s.Create(&models.Category{
		Name: "Child", Slug: childSlug, ParentID: &parent.ID, Active: true,
	})
	if err != nil {
		t.Fatalf("create child: %v", err)
	}

	// Level is derived from the parent, not taken from the input.
	if child.Level != parent.Level+1 {
		t.Errorf("child level: got %d, want %d", child.Level, parent.Level+1)
	}
}

func TestCategoryStoreMaxNesting(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slugs := make([]string, 4)
	for i := range slugs {
		slugs[i] = "test-deep-" + uuid.NewString()[:8]
	}
	t.Cleanup(func() { cleanCategories(t, db, slugs[3], slugs[2], slugs[1], slugs[0]) })

	var parentID *uuid.UUID
	for i := 0; i < 3; i++ {
		c, err := s.Create(&models.Category{Name: "Deep", Slug: slugs[i], ParentID: parentID, Active: true})
		if err != nil {
			t.Fatalf("create level %d: %v", i, err)
		}
		parentID = &c.ID
	}

	// A fourth level exceeds the ceiling.
	if _, err := s.Create(&models.Category{Name: "Too Deep", Slug: slugs[3], ParentID: parentID, Active: true}); err == nil {
		t.Error("expected error creating a category below the maximum level")
	}
}

func TestCategoryStoreListActiveFilters(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	activeSlug := "test-active-" + uuid.NewString()[:8]
	inactiveSlug := "test-inactive-" + uuid.NewString()[:8]
	brSlug := "test-br-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, activeSlug, inactiveSlug, brSlug) })

	if _, err := s.Create(&models.Category{Name: "Active", Slug: activeSlug, Active: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(&models.Category{Name: "Inactive", Slug: inactiveSlug, Active: false}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(&models.Category{Name: "Brazil Only", Slug: brSlug, Country: strPtr("BR"), Active: true}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := s.ListActive(nil)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if !containsSlug(all, activeSlug) {
		t.Error("active category missing from ListActive")
	}
	if containsSlug(all, inactiveSlug) {
		t.Error("inactive category returned by ListActive")
	}

	// A US request excludes BR-restricted categories but keeps global ones.
	us, err := s.ListActive(strPtr("US"))
	if err != nil {
		t.Fatalf("ListActive(US): %v", err)
	}
	if containsSlug(us, brSlug) {
		t.Error("BR-restricted category returned for US")
	}
	if !containsSlug(us, activeSlug) {
		t.Error("country-less category missing for US")
	}
}

func TestCategoryStoreArticleCount(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	articles := NewArticleStore(db)

	catSlug := "test-count-" + uuid.NewString()[:8]
	artSlug := "test-count-art-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		cleanArticles(t, db, artSlug)
		cleanCategories(t, db, catSlug)
	})

	cat, err := s.Create(&models.Category{Name: "Counted", Slug: catSlug, Active: true})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := articles.Create(&models.Article{
		Title: "Counted", Slug: artSlug, Locale: "both", Body: "x",
		CategoryID: &cat.ID, Status: models.ArticleStatusPublished,
		AuthorID: testAuthorID(t, db),
	}); err != nil {
		t.Fatalf("create article: %v", err)
	}

	list, err := s.ListActive(nil)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, c := range list {
		if c.Slug == catSlug && c.ArticleCount != 1 {
			t.Errorf("article count: got %d, want 1", c.ArticleCount)
		}
	}
}

func containsSlug(cats []models.Category, slug string) bool {
	for _, c := range cats {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
