package handlers

import (
	"html"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
)

// entityTags maps formatting entity types to the HTML tags Telegram clients
// use for them. Entity offsets are in UTF-16 code units.
var entityTags = map[models.MessageEntityType]string{
	models.MessageEntityTypeBold:          "b",
	models.MessageEntityTypeItalic:        "i",
	models.MessageEntityTypeUnderline:     "u",
	models.MessageEntityTypeStrikethrough: "s",
	models.MessageEntityTypeCode:          "code",
	models.MessageEntityTypePre:           "pre",
}

type tagEdge struct {
	pos   int
	open  bool
	order int
	tag   string
}

// htmlFromEntities reconstructs the HTML rendition of a message from its
// plain text and formatting entities.
func htmlFromEntities(text string, entities []models.MessageEntity) string {
	units := utf16.Encode([]rune(text))

	var edges []tagEdge
	for i, e := range entities {
		tag, ok := entityTags[e.Type]
		if !ok {
			continue
		}
		if e.Offset < 0 || e.Offset+e.Length > len(units) {
			continue
		}
		edges = append(edges, tagEdge{pos: e.Offset, open: true, order: i, tag: tag})
		edges = append(edges, tagEdge{pos: e.Offset + e.Length, open: false, order: -i, tag: tag})
	}
	if len(edges) == 0 {
		return html.EscapeString(text)
	}

	// Closing edges sort before opening ones at the same position, and
	// nested entities close in reverse order of opening.
	sort.SliceStable(edges, func(a, b int) bool {
		if edges[a].pos != edges[b].pos {
			return edges[a].pos < edges[b].pos
		}
		if edges[a].open != edges[b].open {
			return !edges[a].open
		}
		return edges[a].order < edges[b].order
	})

	var sb strings.Builder
	prev := 0
	for _, e := range edges {
		if e.pos > prev {
			sb.WriteString(html.EscapeString(string(utf16.Decode(units[prev:e.pos]))))
			prev = e.pos
		}
		if e.open {
			sb.WriteString("<" + e.tag + ">")
		} else {
			sb.WriteString("</" + e.tag + ">")
		}
	}
	if prev < len(units) {
		sb.WriteString(html.EscapeString(string(utf16.Decode(units[prev:]))))
	}
	return sb.String()
}
