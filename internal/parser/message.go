package parser

import "time"

// Message is the raw inbound chat message under analysis. It is a transport
// agnostic snapshot of the fields the extractors need: exactly one of Text or
// Caption is meaningful per message, HTMLText is the bold/italic preserving
// render used by the markup-sensitive extractors, and ForwardDate is the
// original send time of a forwarded game screen (zero when the message was
// typed directly into the chat).
type Message struct {
	ID          int64
	Text        string
	HTMLText    string
	Caption     string
	Date        time.Time
	ForwardDate time.Time
	SenderID    int64
	Photo       bool
}

// Body returns the text under analysis: the caption for photo messages, the
// plain text otherwise. An empty body means no extractor may fire.
func (m *Message) Body() string {
	if m.Photo {
		return m.Caption
	}
	return m.Text
}

// When returns the timestamp the game screen was rendered at: the forward
// date when present, else the message date.
func (m *Message) When() time.Time {
	if !m.ForwardDate.IsZero() {
		return m.ForwardDate
	}
	return m.Date
}
