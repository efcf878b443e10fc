// Package markdown builds label text from a small inline markup:
// [text](tag) links, **bold**, ***bold italic***, *italic* and
// _italic_. A backslash escapes any of []()*_\ .
package markdown

import (
	"strings"

	"github.com/rjkroege/linklabel/rich"
)

const escapable = "[]()*_\\"

// Piece is a run of styled text and, if Linked, the tag reported when it
// is tapped.
type Piece struct {
	Content rich.Content
	Tag     string
	Linked  bool
}

// Appender receives parsed pieces. *link.Label implements it.
type Appender interface {
	Append(c rich.Content)
	AppendLink(c rich.Content, tag string)
}

// Feed parses text and appends every piece to a, in order.
func Feed(a Appender, text string) {
	AppendPieces(a, Parse(text))
}

// AppendPieces appends pieces to a, in order.
func AppendPieces(a Appender, pieces []Piece) {
	for _, p := range pieces {
		if p.Linked {
			a.AppendLink(p.Content, p.Tag)
		} else {
			a.Append(p.Content)
		}
	}
}

// Parse splits text into plain and linked pieces. Text between links is
// a single plain piece; every link is its own piece.
func Parse(text string) []Piece {
	var pieces []Piece
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			pieces = append(pieces, Piece{Content: parseInline(plain.String(), rich.DefaultStyle())})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if isEscape(text, i) {
			plain.WriteString(text[i : i+2])
			i += 2
			continue
		}
		if text[i] == '[' {
			if label, tag, n, ok := scanLink(text[i:]); ok {
				flushPlain()
				pieces = append(pieces, Piece{
					Content: parseInline(label, rich.StyleLink),
					Tag:     tag,
					Linked:  true,
				})
				i += n
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flushPlain()
	return pieces
}

// scanLink recognizes [label](tag) at the start of s and returns the label,
// the unescaped and trimmed tag and the number of bytes consumed. Escaped
// brackets and parentheses do not close the label or the tag.
func scanLink(s string) (label, tag string, n int, ok bool) {
	closeBracket := indexUnescaped(s, ']')
	if closeBracket == -1 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	tagEnd := indexUnescaped(s[closeBracket+2:], ')')
	if tagEnd == -1 {
		return "", "", 0, false
	}
	label = s[1:closeBracket]
	tag = strings.TrimSpace(unescape(s[closeBracket+2 : closeBracket+2+tagEnd]))
	return label, tag, closeBracket + 2 + tagEnd + 1, true
}

// indexUnescaped returns the index of the first c in s that is not
// preceded by an escaping backslash, or -1.
func indexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch {
		case isEscape(s, i):
			i++
		case s[i] == c:
			return i
		}
	}
	return -1
}

func isEscape(s string, i int) bool {
	return s[i] == '\\' && i+1 < len(s) && strings.IndexByte(escapable, s[i+1]) >= 0
}

func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isEscape(s, i) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseInline parses emphasis within text and returns styled spans.
// Unmatched markers are kept as literal text.
func parseInline(text string, baseStyle rich.Style) rich.Content {
	var spans rich.Content
	var currentText strings.Builder

	flushPlain := func() {
		if currentText.Len() > 0 {
			spans = append(spans, rich.Span{
				Text:  currentText.String(),
				Style: baseStyle,
			})
			currentText.Reset()
		}
	}

	emphasis := func(i int, marker string, bold, italic bool) (int, bool) {
		if !strings.HasPrefix(text[i:], marker) {
			return 0, false
		}
		end := strings.Index(text[i+len(marker):], marker)
		if end <= 0 {
			return 0, false
		}
		flushPlain()
		s := baseStyle
		s.Bold = s.Bold || bold
		s.Italic = s.Italic || italic
		spans = append(spans, parseInline(text[i+len(marker):i+len(marker)+end], s)...)
		return len(marker) + end + len(marker), true
	}

	for i := 0; i < len(text); {
		if isEscape(text, i) {
			currentText.WriteByte(text[i+1])
			i += 2
			continue
		}
		if n, ok := emphasis(i, "***", true, true); ok {
			i += n
			continue
		}
		if n, ok := emphasis(i, "**", true, false); ok {
			i += n
			continue
		}
		if n, ok := emphasis(i, "*", false, true); ok {
			i += n
			continue
		}
		if n, ok := emphasis(i, "_", false, true); ok {
			i += n
			continue
		}
		currentText.WriteByte(text[i])
		i++
	}
	flushPlain()
	return spans
}
