package markdown

import (
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Author != "Parker Selbert" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if fm.Title != "Sample Post" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Summary != "Sample summary goes here" {
		t.Fatalf("FrontMatter Summary mismatch, got %q", fm.Summary)
	}
	if fm.Custom["category"] != "recipes" {
		t.Fatalf("FrontMatter Custom category missing: %#v", fm.Custom)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Sample Post") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatter_SparseMetadata(t *testing.T) {
	source := []byte("---\ntitle: Only A Title\n---\nBody text.\n")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Only A Title" {
		t.Fatalf("expected title to be set, got %q", fm.Title)
	}
	if fm.Author != "" || fm.Summary != "" {
		t.Fatalf("expected absent keys to default to empty, got author=%q summary=%q", fm.Author, fm.Summary)
	}
	if !strings.Contains(string(body), "Body text.") {
		t.Fatalf("expected body to survive, got %q", string(body))
	}
}

func TestParseFrontMatter_NoBlock(t *testing.T) {
	source := []byte("Plain markdown, no front matter.\n")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Author != "" || fm.Title != "" || fm.Summary != "" {
		t.Fatalf("expected empty metadata, got %#v", fm)
	}
	if !strings.Contains(string(body), "Plain markdown") {
		t.Fatalf("expected body to pass through, got %q", string(body))
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
