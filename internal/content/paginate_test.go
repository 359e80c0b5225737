package content

import (
	"strings"
	"testing"
)

func TestPaginate_EmptyDoc(t *testing.T) {
	pages := Paginate("")
	if len(pages) != 1 || pages[0] != "" {
		t.Errorf("Paginate(\"\") = %q, want single empty page", pages)
	}
}

func TestPaginate_SmallDocSinglePage(t *testing.T) {
	doc := "# Intro\nShort content.\n## Detail\nMore."
	pages := Paginate(doc)
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}
	if pages[0] != doc {
		t.Errorf("page = %q, want original doc", pages[0])
	}
}

func TestPaginate_RoundTrip(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("## Section\n")
		b.WriteString(strings.Repeat("lorem ipsum dolor sit amet ", 20))
		b.WriteString("\n")
	}
	doc := b.String()

	pages := Paginate(doc)
	if len(pages) < 2 {
		t.Fatalf("len(pages) = %d, want multiple pages", len(pages))
	}
	if got := Join(pages); got != doc {
		t.Error("joined pages do not reproduce the original document")
	}
}

func TestPaginate_NeverSplitsBlocks(t *testing.T) {
	section := "# Heading\n" + strings.Repeat("x", 600)
	doc := strings.Join([]string{section, section, section, section}, "\n")

	pages := Paginate(doc)
	for i, p := range pages {
		// Every page must start at a block boundary, i.e. with a heading.
		if !strings.HasPrefix(p, "#") {
			t.Errorf("page %d starts mid-block: %q...", i, p[:20])
		}
	}
}

func TestPaginate_OversizedBlockOwnPage(t *testing.T) {
	big := "# Big\n" + strings.Repeat("y", PageBudget*2)
	doc := "# Small\nintro\n" + big + "\n# Tail\nend"

	pages := Paginate(doc)
	found := false
	for _, p := range pages {
		if strings.HasPrefix(p, "# Big") {
			found = true
			if len(p) <= PageBudget {
				t.Error("oversized block unexpectedly trimmed")
			}
			if strings.Contains(p, "# Tail") || strings.Contains(p, "# Small") {
				t.Error("oversized block page contains other blocks")
			}
		}
	}
	if !found {
		t.Fatal("oversized block not found at a page start")
	}
	if got := Join(pages); got != doc {
		t.Error("joined pages do not reproduce the original document")
	}
}

func TestPaginate_LeadingContentIsOwnBlock(t *testing.T) {
	doc := "preamble before any heading\n# First\nbody"
	pages := Paginate(doc)
	if got := Join(pages); got != doc {
		t.Error("joined pages do not reproduce the original document")
	}
	if !strings.HasPrefix(pages[0], "preamble") {
		t.Errorf("first page = %q, want preamble first", pages[0])
	}
}

func TestPaginate_PagesStayWithinBudget(t *testing.T) {
	// All blocks well under budget: no page should exceed it.
	block := "## S\n" + strings.Repeat("z", 400)
	doc := strings.Repeat(block+"\n", 30)
	doc = strings.TrimSuffix(doc, "\n")

	for i, p := range Paginate(doc) {
		if len(p) > PageBudget {
			t.Errorf("page %d length %d exceeds budget %d", i, len(p), PageBudget)
		}
	}
}
