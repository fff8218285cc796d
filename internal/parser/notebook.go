package parser

import "strings"

// extractNotebook parses a survival-diary dump line by line. The literal
// banner gates the whole extractor; without it the line grammar would fire on
// arbitrary "label: number" chat text. Labels outside the stat table land in
// the sink key instead of being rejected.
func (p *Parser) extractNotebook(m *Message, r *Result) {
	text := m.Body()
	loc := p.g.notebookBanner.FindStringIndex(text)
	if loc == nil {
		return
	}

	nb := &Notebook{Stats: make(map[string]int)}
	for _, line := range strings.Split(text[loc[1]:], "\n") {
		g := firstGroups(p.g.notebookLine, line)
		if g == nil {
			continue
		}
		label := strings.TrimSpace(g["label"])
		entry := NotebookEntry{
			Label:  label,
			Value:  atoi(g["value"]),
			Suffix: strings.TrimSpace(g["suffix"]),
			Key:    p.world.NotebookKey(label),
		}
		nb.Entries = append(nb.Entries, entry)
		nb.Stats[entry.Key] += entry.Value
	}

	if len(nb.Entries) == 0 {
		return
	}
	r.Notebook = nb
}
