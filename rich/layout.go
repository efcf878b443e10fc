package rich

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/rjkroege/linklabel/draw"
)

// WrapMode selects how lines are broken when text is wider than the
// layout.
type WrapMode int

const (
	WrapWord         WrapMode = iota // break between words, splitting words longer than a line
	WrapChar                         // break at any character
	WrapClip                         // only hard newlines break lines
	WrapTruncateTail                 // word wrap; a cut-off last line ends in an ellipsis
)

var wrapNames = []string{"word", "char", "clip", "tail"}

func (w WrapMode) String() string {
	if w < 0 || int(w) >= len(wrapNames) {
		return fmt.Sprintf("WrapMode(%d)", int(w))
	}
	return wrapNames[w]
}

// ParseWrapMode converts a name produced by WrapMode.String back into a
// WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	for i, n := range wrapNames {
		if n == s {
			return WrapMode(i), nil
		}
	}
	return WrapWord, fmt.Errorf("unknown wrap mode %q", s)
}

// Align positions each line horizontally within the layout width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = []string{"left", "center", "right"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign converts a name produced by Align.String back into an Align.
func ParseAlign(s string) (Align, error) {
	for i, n := range alignNames {
		if n == s {
			return Align(i), nil
		}
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Ellipsis is drawn at the end of a tail-truncated layout.
const Ellipsis = "…"

// PositionedBox is a Box placed on a Line.
type PositionedBox struct {
	Box   Box
	X     int // offset from the line's X
	Start int // rune offset of the box in the content
}

// Line is one laid-out line of text.
type Line struct {
	Boxes  []PositionedBox
	X, Y   int // origin within the layout
	Width  int
	Height int
	Start  int // rune offset of the first character on the line
	End    int // rune offset one past the last character on the line
}

// Layout is the result of laying out Content into a container. A Layout
// is immutable and cheap to discard.
type Layout struct {
	lines     []Line
	nrunes    int
	truncated bool
	ellipsis  bool
	fonts     *Fonts
}

// Engine lays out Content using a set of fonts.
type Engine struct {
	Fonts Fonts
	Align Align

	// TabStop is the tab width in pixels. Zero means four widths of "0"
	// in the regular font.
	TabStop int
}

// Layout lays out c in a container of the given size. A non-positive
// size.X disables wrapping; a non-positive size.Y disables the height
// limit. maxLines <= 0 means no line limit.
func (e *Engine) Layout(c Content, size image.Point, wrap WrapMode, maxLines int) *Layout {
	l := &Layout{nrunes: c.Len()}
	if e == nil || e.Fonts.Regular == nil {
		return l
	}
	l.fonts = &e.Fonts

	tabstop := e.TabStop
	if tabstop <= 0 {
		tabstop = 4 * e.Fonts.Regular.StringWidth("0")
	}
	if tabstop <= 0 {
		tabstop = 1
	}

	lb := &lineBuilder{
		fonts:   &e.Fonts,
		width:   size.X,
		wrap:    wrap,
		tabstop: tabstop,
	}
	for _, box := range contentToBoxes(c) {
		lb.place(box)
	}
	lb.finish()

	l.lines = lb.lines
	l.clip(size.Y, maxLines)
	if l.truncated && wrap == WrapTruncateTail {
		l.truncateTail(size.X)
	}
	l.align(e.Align, size.X)
	return l
}

// contentToBoxes converts Content (styled spans) into a sequence of Boxes.
// Each Box represents either a run of text, a newline, or a tab.
// Text is split on newlines and tabs, which become their own boxes.
func contentToBoxes(c Content) []Box {
	var boxes []Box

	for _, span := range c {
		if span.Text == "" {
			continue
		}
		boxes = appendSpanBoxes(boxes, span)
	}

	return boxes
}

// appendSpanBoxes appends boxes from a single span to the slice.
// It splits the span text on newlines and tabs.
func appendSpanBoxes(boxes []Box, span Span) []Box {
	text := span.Text
	style := span.Style

	for len(text) > 0 {
		idx := -1
		var special rune
		for i, r := range text {
			if r == '\n' || r == '\t' {
				idx = i
				special = r
				break
			}
		}

		if idx == -1 {
			boxes = append(boxes, textBox(text, style))
			break
		}
		if idx > 0 {
			boxes = append(boxes, textBox(text[:idx], style))
		}
		boxes = append(boxes, Box{
			Nrune: -1,
			Bc:    special,
			Style: style,
		})
		text = text[idx+1:]
	}

	return boxes
}

func textBox(s string, style Style) Box {
	return Box{
		Text:  []byte(s),
		Nrune: utf8.RuneCountInString(s),
		Style: style,
	}
}

// lineBuilder accumulates boxes into lines.
type lineBuilder struct {
	fonts   *Fonts
	width   int
	wrap    WrapMode
	tabstop int

	lines []Line
	cur   Line
	x     int
	pos   int // rune offset of the next box
}

func (lb *lineBuilder) wraps() bool {
	return lb.width > 0 && lb.wrap != WrapClip
}

func (lb *lineBuilder) place(box Box) {
	font := lb.fonts.ForStyle(box.Style)

	switch {
	case box.IsNewline():
		lb.add(box, 0, font.Height())
		lb.newline()
		return
	case box.IsTab():
		w := lb.tabstop - lb.x%lb.tabstop
		if lb.wraps() && lb.x > 0 && lb.x+w > lb.width {
			lb.newline()
			w = lb.tabstop
		}
		lb.add(box, w, font.Height())
		return
	}

	if !lb.wraps() {
		lb.add(box, font.BytesWidth(box.Text), font.Height())
		return
	}
	if lb.wrap == WrapChar {
		lb.placeSplitting(box)
		return
	}
	for _, w := range splitWords(box) {
		lb.placeWord(w)
	}
}

// placeWord places a word (with any trailing blanks) on the current line,
// moving to a new line when it does not fit. Trailing blanks may hang
// past the right edge.
func (lb *lineBuilder) placeWord(box Box) {
	font := lb.fonts.ForStyle(box.Style)
	wid := font.BytesWidth(box.Text)
	fit := font.BytesWidth(trimTrailingBlanks(box.Text))

	if lb.x+fit <= lb.width {
		lb.add(box, wid, font.Height())
		return
	}
	if lb.x > 0 {
		lb.newline()
	}
	if fit <= lb.width {
		lb.add(box, wid, font.Height())
		return
	}
	lb.placeSplitting(box)
}

// placeSplitting places the grapheme clusters of box greedily, breaking
// lines between any two clusters. Every line receives at least one.
func (lb *lineBuilder) placeSplitting(box Box) {
	font := lb.fonts.ForStyle(box.Style)
	text := box.Text
	for len(text) > 0 {
		n, w := 0, 0
		for _, end := range clusterEnds(text) {
			cw := font.BytesWidth(text[n:end])
			if lb.x+w+cw > lb.width && (lb.x > 0 || n > 0) {
				break
			}
			w += cw
			n = end
		}
		if n == 0 {
			lb.newline()
			continue
		}
		lb.add(textBox(string(text[:n]), box.Style), w, font.Height())
		text = text[n:]
		if len(text) > 0 {
			lb.newline()
		}
	}
}

func (lb *lineBuilder) add(box Box, wid, height int) {
	box.Wid = wid
	if len(lb.cur.Boxes) == 0 {
		lb.cur.Start = lb.pos
	}
	lb.cur.Boxes = append(lb.cur.Boxes, PositionedBox{Box: box, X: lb.x, Start: lb.pos})
	lb.x += wid
	lb.pos += box.Runes()
	lb.cur.End = lb.pos
	lb.cur.Width = lb.x
	if height > lb.cur.Height {
		lb.cur.Height = height
	}
}

func (lb *lineBuilder) newline() {
	if len(lb.cur.Boxes) == 0 {
		return
	}
	y := 0
	if n := len(lb.lines); n > 0 {
		y = lb.lines[n-1].Y + lb.lines[n-1].Height
	}
	lb.cur.Y = y
	lb.lines = append(lb.lines, lb.cur)
	lb.cur = Line{}
	lb.x = 0
}

func (lb *lineBuilder) finish() {
	lb.newline()
}

// splitWords splits a text box after each run of blanks.
func splitWords(box Box) []Box {
	var words []Box
	text := box.Text
	start := 0
	inBlank := false
	for i, r := range string(text) {
		blank := r == ' '
		if inBlank && !blank {
			words = append(words, textBox(string(text[start:i]), box.Style))
			start = i
		}
		inBlank = blank
	}
	if start < len(text) {
		words = append(words, textBox(string(text[start:]), box.Style))
	}
	return words
}

func trimTrailingBlanks(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == ' ' {
		b = b[:len(b)-1]
	}
	return b
}

// clip drops lines past maxLines or past the container height. The first
// line is always kept.
func (l *Layout) clip(height, maxLines int) {
	n := len(l.lines)
	if maxLines > 0 && n > maxLines {
		n = maxLines
	}
	if height > 0 {
		for i := 1; i < n; i++ {
			if l.lines[i].Y+l.lines[i].Height > height {
				n = i
				break
			}
		}
	}
	if n < len(l.lines) {
		l.lines = l.lines[:n]
		l.truncated = true
	}
}

// truncateTail trims the last line so that an ellipsis fits within width.
func (l *Layout) truncateTail(width int) {
	last := &l.lines[len(l.lines)-1]
	ellw := l.fonts.Regular.StringWidth(Ellipsis)

	for len(last.Boxes) > 0 {
		i := len(last.Boxes) - 1
		pb := &last.Boxes[i]
		if pb.Box.Nrune < 0 {
			last.Boxes = last.Boxes[:i]
			last.Width = pb.X
			continue
		}
		if width <= 0 || pb.X+pb.Box.Wid+ellw <= width {
			break
		}
		// Drop clusters from the end of the box until the ellipsis fits.
		font := l.fonts.ForStyle(pb.Box.Style)
		text := pb.Box.Text
		for len(text) > 0 && pb.X+font.BytesWidth(text)+ellw > width {
			text = trimLastCluster(text)
		}
		if len(text) == 0 {
			last.Boxes = last.Boxes[:i]
			last.Width = pb.X
			continue
		}
		pb.Box.Text = text
		pb.Box.Nrune = utf8.RuneCount(text)
		pb.Box.Wid = font.BytesWidth(text)
		last.Width = pb.X + pb.Box.Wid
		break
	}

	last.End = last.Start
	if n := len(last.Boxes); n > 0 {
		pb := last.Boxes[n-1]
		last.End = pb.Start + pb.Box.Runes()
	}
	l.ellipsis = true
}

// align sets each line's X. Lines are aligned within width when it is
// positive, otherwise within the widest line.
func (l *Layout) align(a Align, width int) {
	if width <= 0 {
		for i := range l.lines {
			if w := l.lineWidth(i); w > width {
				width = w
			}
		}
	}
	for i := range l.lines {
		free := width - l.lineWidth(i)
		if free < 0 {
			free = 0
		}
		switch a {
		case AlignCenter:
			l.lines[i].X = free / 2
		case AlignRight:
			l.lines[i].X = free
		default:
			l.lines[i].X = 0
		}
	}
}

// lineWidth is the drawn width of line i including a trailing ellipsis.
func (l *Layout) lineWidth(i int) int {
	w := l.lines[i].Width
	if l.ellipsis && i == len(l.lines)-1 {
		w += l.fonts.Regular.StringWidth(Ellipsis)
	}
	return w
}

// Lines returns the laid-out lines.
func (l *Layout) Lines() []Line {
	return l.lines
}

// Truncated reports whether lines were dropped by the line limit or the
// container height.
func (l *Layout) Truncated() bool {
	return l.truncated
}

// Ellipsis reports whether the last line ends in an ellipsis.
func (l *Layout) Ellipsis() bool {
	return l.ellipsis
}

// Len returns the rune count of the laid-out content.
func (l *Layout) Len() int {
	return l.nrunes
}

// VisibleRunes returns the number of runes from the start of the content
// that appear in the layout.
func (l *Layout) VisibleRunes() int {
	if len(l.lines) == 0 {
		return 0
	}
	return l.lines[len(l.lines)-1].End
}

// UsedRect returns the bounding rectangle of the laid-out lines in layout
// coordinates. It is empty when there is no content.
func (l *Layout) UsedRect() image.Rectangle {
	var r image.Rectangle
	for i, ln := range l.lines {
		lr := image.Rect(ln.X, ln.Y, ln.X+l.lineWidth(i), ln.Y+ln.Height)
		if i == 0 {
			r = lr
			continue
		}
		r = r.Union(lr)
	}
	return r
}

// CenterOffset returns the translation that centers a used rectangle
// inside a container of the given size. Adding it to a layout point
// yields a container point.
func CenterOffset(size image.Point, used image.Rectangle) image.Point {
	return image.Pt(
		(size.X-used.Dx())/2-used.Min.X,
		(size.Y-used.Dy())/2-used.Min.Y,
	)
}

// Charofpt returns the index of the character nearest to pt, given in
// layout coordinates. Points between lines resolve to the line above;
// points past the end of a line resolve to its last character. The
// result is in [0, Len()) for non-empty content and 0 otherwise.
func (l *Layout) Charofpt(pt image.Point) int {
	if len(l.lines) == 0 {
		return 0
	}

	lineIdx := 0
	for i, ln := range l.lines {
		if pt.Y >= ln.Y {
			lineIdx = i
		}
	}
	ln := l.lines[lineIdx]
	x := pt.X - ln.X

	for _, pb := range ln.Boxes {
		if x < pb.X {
			return l.clamp(pb.Start)
		}
		if pb.Box.IsNewline() {
			return l.clamp(pb.Start)
		}
		if x >= pb.X+pb.Box.Wid {
			continue
		}
		if pb.Box.IsTab() {
			return l.clamp(pb.Start)
		}
		return l.clamp(pb.Start + runeAtX(l.fonts.ForStyle(pb.Box.Style), pb.Box.Text, x-pb.X))
	}

	// Past all content on this line.
	return l.clamp(ln.End - 1)
}

func (l *Layout) clamp(p int) int {
	if p >= l.nrunes {
		p = l.nrunes - 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// runeAtX finds which rune in text corresponds to pixel offset x.
// Returns the rune index (0-based) within the text.
func runeAtX(font draw.Font, text []byte, x int) int {
	cumWidth := 0
	runeIdx := 0
	for i := 0; i < len(text); {
		_, runeLen := utf8.DecodeRune(text[i:])
		cumWidth += font.BytesWidth(text[i : i+runeLen])
		if cumWidth > x {
			return runeIdx
		}
		runeIdx++
		i += runeLen
	}
	return runeIdx - 1
}

// Ptofchar maps a character position to the top-left point of that
// character in layout coordinates. Positions past the visible text map
// to the end of the last line.
func (l *Layout) Ptofchar(p int) image.Point {
	if len(l.lines) == 0 {
		return image.Point{}
	}
	if p < 0 {
		p = 0
	}
	for _, ln := range l.lines {
		if p >= ln.End {
			continue
		}
		for _, pb := range ln.Boxes {
			n := pb.Box.Runes()
			if p >= pb.Start+n {
				continue
			}
			x := pb.X
			if pb.Box.Nrune > 0 {
				x += l.fonts.ForStyle(pb.Box.Style).BytesWidth(prefixRunes(pb.Box.Text, p-pb.Start))
			}
			return image.Pt(ln.X+x, ln.Y)
		}
	}
	last := l.lines[len(l.lines)-1]
	return image.Pt(last.X+last.Width, last.Y)
}

func prefixRunes(b []byte, n int) []byte {
	i := 0
	for ; n > 0 && i < len(b); n-- {
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}
	return b[:i]
}
