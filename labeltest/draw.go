// Package labeltest contains mock draw implementations that help with
// testing labels without a devdraw connection.
package labeltest

import (
	"fmt"
	"image"
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/linklabel/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

const (
	// FontWidth and FontHeight are the metrics of the font returned by
	// the mock display's OpenFont.
	FontWidth  = 10
	FontHeight = 16
)

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu          sync.Mutex
	drawops     []string
	screenimage draw.Image
}

// NewDisplay returns a mock draw.Display with a screen image of the
// given size.
func NewDisplay(screen image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = newimageimpl(md, "screen", draw.Notacolor, screen)
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image { return d.screenimage }
func (d *mockDisplay) White() draw.Image {
	return newimageimpl(d, "white", draw.White, image.Rectangle{})
}
func (d *mockDisplay) Black() draw.Image {
	return newimageimpl(d, "black", draw.Black, image.Rectangle{})
}
func (d *mockDisplay) InitMouse() *draw.Mousectl { return &draw.Mousectl{} }

func (d *mockDisplay) OpenFont(name string) (draw.Font, error) {
	return NewFont(FontWidth, FontHeight), nil
}

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return &mockImage{
		d:    d,
		r:    r,
		c:    val,
		repl: repl,
	}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }
func (d *mockDisplay) Flush() error         { return nil }
func (d *mockDisplay) ScaleSize(n int) int  { return n }

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.drawops...)
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
}

func (d *mockDisplay) record(op string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = append(d.drawops, op)
}

// mockImage implements draw.Image.
type mockImage struct {
	d    *mockDisplay
	r    image.Rectangle
	n    string
	c    draw.Color
	repl bool
}

// newimageimpl creates a new mockImage. Use Notacolor for the situation
// where the name of the image takes precedence.
func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{
		r: r,
		d: d,
		c: c,
		n: name,
	}
}

// NewImage returns a mock draw.Image with the given bounds.
func NewImage(display draw.Display, name string, r image.Rectangle) draw.Image {
	d := display.(*mockDisplay)
	return newimageimpl(d, name, draw.Notacolor, r)
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return 0 }
func (i *mockImage) R() image.Rectangle    { return i.r }

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	srcname := "nil"
	if msrc, ok := src.(*mockImage); ok {
		srcname = msrc.N()
	}
	i.d.record(fmt.Sprintf("%s <- fill %v src: %s", i.N(), r, srcname))
}

func (i *mockImage) Bytes(pt image.Point, src draw.Image, sp image.Point, f draw.Font, b []byte) image.Point {
	srcname := "nil"
	if msrc, ok := src.(*mockImage); ok {
		srcname = msrc.N()
	}
	i.d.record(fmt.Sprintf("%s <- string %q atpoint: %v fill: %s", i.N(), string(b), pt, srcname))
	return pt.Add(image.Pt(f.BytesWidth(b), 0))
}

func (i *mockImage) Free() error { return nil }

// N returns a nicename for the image colour.
func (i *mockImage) N() string {
	name := i.n
	if i.c != draw.Notacolor {
		name = fmt.Sprintf("#%08x", uint32(i.c))
	}
	if i.repl {
		name += ",tiled"
	}
	return name
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string             { return MockFontName }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }
