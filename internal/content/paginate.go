package content

import "strings"

// PageBudget is the character budget per page. A page may exceed it only
// when a single atomic block is itself larger than the budget.
const PageBudget = 1800

// blockSeparator joins blocks within a page and pages back into the
// original document.
const blockSeparator = "\n"

// Paginate splits a markdown document into bounded-size pages aligned on
// heading boundaries. Every heading line starts a new atomic block and
// blocks are never split across pages, so an oversized block becomes a
// page of its own. Joining the returned pages in order with Join
// reconstructs the document exactly. An empty document yields a single
// empty page so callers always have something to render.
func Paginate(doc string) []string {
	if doc == "" {
		return []string{""}
	}

	blocks := splitBlocks(doc)

	var pages []string
	var buf strings.Builder
	for _, block := range blocks {
		if buf.Len() > 0 && buf.Len()+len(blockSeparator)+len(block) > PageBudget {
			pages = append(pages, buf.String())
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteString(blockSeparator)
		}
		buf.WriteString(block)
	}
	pages = append(pages, buf.String())
	return pages
}

// Join reassembles pages produced by Paginate into the original document.
func Join(pages []string) string {
	return strings.Join(pages, blockSeparator)
}

// splitBlocks cuts the document at heading boundaries. Each heading line
// (one or more leading '#') begins a new block; any content before the
// first heading is its own block.
func splitBlocks(doc string) []string {
	lines := strings.Split(doc, "\n")

	var blocks []string
	var cur []string
	for _, line := range lines {
		if isHeading(line) && len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}
	return blocks
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}
