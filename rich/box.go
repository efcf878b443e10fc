package rich

// Box represents a positioned, styled fragment of text.
// This is the layout model - produced by laying out Spans.
type Box struct {
	// Content
	Text  []byte // UTF-8 content (empty for newline/tab)
	Nrune int    // Rune count (-1 for special boxes)
	Bc    rune   // Box character: 0 for text, '\n' for newline, '\t' for tab

	Style Style

	// Layout (computed)
	Wid int // Width in pixels
}

// IsNewline returns true if this is a newline box.
func (b *Box) IsNewline() bool {
	return b.Nrune < 0 && b.Bc == '\n'
}

// IsTab returns true if this is a tab box.
func (b *Box) IsTab() bool {
	return b.Nrune < 0 && b.Bc == '\t'
}

// Runes returns the number of characters b occupies in the content.
// Newline and tab boxes count as one.
func (b *Box) Runes() int {
	if b.Nrune < 0 {
		return 1
	}
	return b.Nrune
}
