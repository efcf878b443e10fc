package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/rjkroege/linklabel/link"
	"github.com/rjkroege/linklabel/markdown"
	"github.com/rjkroege/linklabel/rich"
)

var (
	demoRed   = color.RGBA{R: 255, A: 255}
	demoGreen = color.RGBA{G: 255, A: 255}
)

// demoPieces returns the texts and links shown when no markup is given.
// Indices 15, 31 and 39 are plain red text. 14, 22 and 40 are green
// underlined links. The remaining even indices are bold links and the odd
// ones italic links.
func demoPieces() []markdown.Piece {
	var pieces []markdown.Piece
	for idx := 14; idx <= 40; idx++ {
		switch {
		case idx == 15 || idx == 31 || idx == 39:
			pieces = append(pieces, markdown.Piece{
				Content: rich.Styled(fmt.Sprintf(" This is text %d", idx), rich.Style{Fg: demoRed}),
			})
		case idx == 14 || idx == 22 || idx == 40:
			pieces = append(pieces, demoLink(idx, rich.Style{Fg: demoGreen, Underline: true, Link: true}))
		case idx%2 == 0:
			pieces = append(pieces, demoLink(idx, rich.Style{Bold: true, Link: true}))
		default:
			pieces = append(pieces, demoLink(idx, rich.Style{Italic: true, Link: true}))
		}
	}
	return pieces
}

func demoLink(idx int, style rich.Style) markdown.Piece {
	return markdown.Piece{
		Content: rich.Styled(fmt.Sprintf(" Link %d", idx), style),
		Tag:     fmt.Sprintf("link %d", idx),
		Linked:  true,
	}
}

func tappedMessage(tag string) string {
	return "You has tapped on the link with tag = " + tag
}

// splitScreen divides r into the label's rectangle and a message line
// of the given height along the bottom, inset by margin.
func splitScreen(r image.Rectangle, lineHeight, margin int) (label, message image.Rectangle) {
	r = r.Inset(margin)
	if r.Empty() {
		return image.Rectangle{}, image.Rectangle{}
	}
	message = image.Rect(r.Min.X, r.Max.Y-lineHeight, r.Max.X, r.Max.Y)
	if message.Min.Y < r.Min.Y {
		message.Min.Y = r.Min.Y
	}
	label = image.Rect(r.Min.X, r.Min.Y, r.Max.X, message.Min.Y-margin)
	if label.Max.Y < label.Min.Y {
		label.Max.Y = label.Min.Y
	}
	return label, message
}

// headlessTag lays pieces out in a label of the given size, measured with
// a built-in 7x13 font, and returns the tag under pt.
func headlessTag(pieces []markdown.Piece, size, pt image.Point, wrap rich.WrapMode, align rich.Align, maxLines int) (string, bool) {
	frame := rich.NewFrame()
	frame.Init(image.Rectangle{Max: size},
		rich.WithFont(rich.NewFaceFont("basicfont.Face7x13", basicfont.Face7x13)),
		rich.WithAlign(align),
		rich.WithWrap(wrap),
		rich.WithMaxLines(maxLines),
	)

	var tag string
	var hit bool
	l := link.NewLabel(frame, link.WithObserver(link.ObserverFunc(func(_ *link.Label, t string) {
		tag, hit = t, true
	})))
	markdown.AppendPieces(l, pieces)
	l.TouchesEnded(link.PointerEvent{Points: []image.Point{pt}})
	return tag, hit
}

// parsePair parses two integers separated by sep, as in "640x480" or
// "10,20".
func parsePair(s, sep string) (image.Point, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return image.Point{}, fmt.Errorf("%q: want two integers separated by %q", s, sep)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return image.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return image.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	return image.Pt(x, y), nil
}
