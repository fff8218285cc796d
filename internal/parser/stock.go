package parser

import (
	"regexp"
	"strings"
)

// stockList binds a section banner to the category its items are tagged
// with. The four list grammars are additive: each independently contributes
// zero or more items to the same output sequence, never replacing what an
// earlier grammar found.
type stockList struct {
	name     string
	category StockCategory
}

// extractStock runs the backpack, food-pouch, resource and junk list
// grammars and appends every item found. Lists print "Name (x3)" for stacks
// and a bare name for singles; the amount defaults to 1 when omitted.
func (p *Parser) extractStock(m *Message, r *Result) {
	text := m.Body()

	lists := []struct {
		banner *regexp.Regexp
		stockList
	}{
		{p.g.backpack, stockList{"backpack", StockOther}},
		{p.g.foodBag, stockList{"food", StockFood}},
		{p.g.resources, stockList{"resources", StockResource}},
		{p.g.junk, stockList{"junk", StockStuff}},
	}

	for _, l := range lists {
		loc := l.banner.FindStringIndex(text)
		if loc == nil {
			continue
		}
		r.Stock = append(r.Stock, p.parseStockSection(text[loc[1]:], l.category)...)
	}
}

// parseStockSection reads item lines until a blank line or the next section
// banner.
func (p *Parser) parseStockSection(text string, cat StockCategory) []StockItem {
	var items []StockItem
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && len(items) > 0 {
			break
		}
		if trimmed == "" {
			continue
		}
		if sectionBanner(trimmed) {
			break
		}
		g := firstGroups(p.g.stockItem, line)
		if g == nil {
			continue
		}
		name := strings.TrimSpace(g["name"])
		if name == "" {
			continue
		}
		amount := 1
		if g["amount"] != "" {
			amount = atoi(g["amount"])
		}
		items = append(items, StockItem{Name: name, Amount: amount, Category: cat})
	}
	return items
}

// sectionBanner reports whether a line opens another inventory section.
func sectionBanner(line string) bool {
	for _, prefix := range []string{"🎒", "🍱", "📦", "🗑"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
