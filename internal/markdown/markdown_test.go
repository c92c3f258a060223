package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLHeadingsAndParagraphs(t *testing.T) {
	html, err := ToHTML("## Deductibles\n\nThe amount you pay first.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h2") {
		t.Errorf("expected h2 heading, got %q", html)
	}
	if !strings.Contains(html, "<p>The amount you pay first.</p>") {
		t.Errorf("expected paragraph, got %q", html)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	src := "| Plan | Price |\n| --- | --- |\n| Basic | $10 |\n"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected GFM table, got %q", html)
	}
}

func TestToHTMLRawHTMLPassthrough(t *testing.T) {
	src := "<div class=\"cta\">Compare now</div>"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<div class=\"cta\">") {
		t.Errorf("expected raw HTML passthrough, got %q", html)
	}
}

func TestToHTMLAutoHeadingID(t *testing.T) {
	html, err := ToHTML("# Compare Plans")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "id=") {
		t.Errorf("expected auto heading id, got %q", html)
	}
}
