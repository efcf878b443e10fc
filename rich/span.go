package rich

import (
	"strings"
	"unicode/utf8"
)

// Span represents a run of text with uniform style.
// This is the input model - what callers append to a label.
type Span struct {
	Text  string
	Style Style
}

// Content is a sequence of styled spans representing a document.
type Content []Span

// Plain creates Content from unstyled text.
func Plain(text string) Content {
	return Content{{Text: text, Style: DefaultStyle()}}
}

// Styled creates single-span Content with the given style.
func Styled(text string, style Style) Content {
	return Content{{Text: text, Style: style}}
}

// Len returns total rune count.
func (c Content) Len() int {
	n := 0
	for _, s := range c {
		n += utf8.RuneCountInString(s.Text)
	}
	return n
}

// String returns the unstyled text of c.
func (c Content) String() string {
	var sb strings.Builder
	for _, s := range c {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Concat returns a new Content holding the spans of c followed by those
// of d. Neither argument is modified.
func (c Content) Concat(d Content) Content {
	out := make(Content, 0, len(c)+len(d))
	out = append(out, c...)
	return append(out, d...)
}
