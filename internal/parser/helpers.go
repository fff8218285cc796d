package parser

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// groups maps named capture groups of a match to their values. Unmatched
// optional groups come back as empty strings, never as errors.
func groups(re *regexp.Regexp, match []string) map[string]string {
	out := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(match) {
			continue
		}
		out[name] = match[i]
	}
	return out
}

// firstGroups returns the named groups of the first match, nil when the
// pattern does not match.
func firstGroups(re *regexp.Regexp, text string) map[string]string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	return groups(re, match)
}

// matchStrings converts submatch indices back to submatch strings.
func matchStrings(re *regexp.Regexp, text string, loc []int) []string {
	out := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, text[loc[i]:loc[i+1]])
	}
	return out
}

// atoi parses a captured numeric group, tolerating empty and malformed input
// as 0. Grammars guarantee digit-only groups, but the game UI changes from
// time to time and a capture must never abort an extraction.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// emoji codepoint ranges stripped from nicknames. Players decorate names with
// arbitrary glyphs; the stored nickname keeps only the textual part.
var emojiRanges = [][2]rune{
	{0x1F000, 0x1FAFF}, // pictographs, symbols, supplemental
	{0x2600, 0x27BF},   // misc symbols, dingbats
	{0x2B00, 0x2BFF},   // arrows and stars
	{0x2190, 0x21FF},   // arrows
	{0xFE00, 0xFE0F},   // variation selectors
	{0x200D, 0x200D},   // zero-width joiner
	{0x2100, 0x214F},   // letterlike symbols
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// cleanNickname strips emoji decoration and HTML-escapes the remainder, the
// form nicknames are stored and compared in.
func cleanNickname(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return html.EscapeString(strings.TrimSpace(b.String()))
}

// Tag-digit cipher: the game hides the owner's numeric Telegram id in profile
// forwards as a run of invisible "tag digit" codepoints (U+E0030–U+E0039),
// one per decimal digit.
const (
	tagDigitBase rune = 0xE0030
	tagDigitMax  rune = 0xE0039
)

// decodeHiddenID extracts the hidden Telegram id from text, 0 when no tag
// digits are present.
func decodeHiddenID(s string) int64 {
	var id int64
	found := false
	for _, r := range s {
		if r < tagDigitBase || r > tagDigitMax {
			continue
		}
		id = id*10 + int64(r-tagDigitBase)
		found = true
	}
	if !found {
		return 0
	}
	return id
}

// EncodeHiddenID renders an id as the tag-digit cipher. The bot appends it to
// its own profile cards so that re-forwarded cards stay attributable.
func EncodeHiddenID(id int64) string {
	if id <= 0 {
		return ""
	}
	digits := strconv.FormatInt(id, 10)
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(tagDigitBase + (d - '0'))
	}
	return b.String()
}
