package rich

import (
	"image"
	"image/color"

	"github.com/rjkroege/linklabel/draw"
)

// Option is a functional option for configuring a Frame.
type Option func(*frameImpl)

// Frame renders styled text content centered in a rectangle.
type Frame interface {
	// Initialization
	Init(r image.Rectangle, opts ...Option)
	Clear()

	// Content
	SetContent(c Content)
	Content() Content

	// Geometry
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Ptofchar(p int) image.Point  // Character position → screen point
	Charofpt(pt image.Point) int // Screen point → character position

	// Layout configuration
	Engine() *Engine
	SetWrap(w WrapMode)
	Wrap() WrapMode
	SetMaxLines(n int)
	MaxLines() int

	// Layout lays out the current content in the frame's rectangle.
	Layout() *Layout

	// Rendering
	Redraw()
}

// frameImpl is the concrete implementation of Frame.
type frameImpl struct {
	rect       image.Rectangle
	display    draw.Display
	target     draw.Image
	background draw.Image // background image for filling
	textColor  draw.Image // text color image for rendering
	content    Content

	engine   Engine
	wrap     WrapMode
	maxLines int

	colors map[draw.Color]draw.Image
}

// NewFrame creates a new Frame.
func NewFrame() Frame {
	return &frameImpl{}
}

// Init initializes the frame with the given rectangle and options.
func (f *frameImpl) Init(r image.Rectangle, opts ...Option) {
	f.rect = r
	for _, opt := range opts {
		opt(f)
	}
}

// Clear resets the frame's content.
func (f *frameImpl) Clear() {
	f.content = nil
}

// SetContent sets the content to display.
func (f *frameImpl) SetContent(c Content) {
	f.content = c
}

func (f *frameImpl) Content() Content {
	return f.content
}

// Rect returns the frame's rectangle.
func (f *frameImpl) Rect() image.Rectangle {
	return f.rect
}

// SetRect updates the frame's rectangle. Subsequent layouts use the new
// size.
func (f *frameImpl) SetRect(r image.Rectangle) {
	f.rect = r
}

func (f *frameImpl) Engine() *Engine    { return &f.engine }
func (f *frameImpl) SetWrap(w WrapMode) { f.wrap = w }
func (f *frameImpl) Wrap() WrapMode     { return f.wrap }
func (f *frameImpl) SetMaxLines(n int)  { f.maxLines = n }
func (f *frameImpl) MaxLines() int      { return f.maxLines }

func (f *frameImpl) Layout() *Layout {
	return f.engine.Layout(f.content, f.rect.Size(), f.wrap, f.maxLines)
}

// origin returns the screen point of the layout's (0,0).
func (f *frameImpl) origin(l *Layout) image.Point {
	return f.rect.Min.Add(CenterOffset(f.rect.Size(), l.UsedRect()))
}

// Ptofchar maps a character position to the screen point where that
// character is drawn.
func (f *frameImpl) Ptofchar(p int) image.Point {
	l := f.Layout()
	return l.Ptofchar(p).Add(f.origin(l))
}

// Charofpt maps a screen point to the nearest character position.
func (f *frameImpl) Charofpt(pt image.Point) int {
	l := f.Layout()
	return l.Charofpt(pt.Sub(f.origin(l)))
}

// Redraw fills the frame with its background and draws the content.
func (f *frameImpl) Redraw() {
	if f.display == nil {
		return
	}
	target := f.target
	if target == nil {
		target = f.display.ScreenImage()
	}
	if f.background != nil {
		target.Draw(f.rect, f.background, nil, image.Point{})
	}
	if f.engine.Fonts.Regular == nil {
		return
	}

	l := f.Layout()
	org := f.origin(l)
	lines := l.Lines()
	for _, line := range lines {
		top := org.Y + line.Y
		if top < f.rect.Min.Y || top+line.Height > f.rect.Max.Y {
			continue
		}
		for _, pb := range line.Boxes {
			if pb.Box.Nrune <= 0 {
				continue
			}
			f.drawBox(target, pb, image.Pt(org.X+line.X+pb.X, top), line.Height)
		}
	}

	if l.Ellipsis() && len(lines) > 0 {
		last := lines[len(lines)-1]
		font := f.engine.Fonts.Regular
		pt := image.Pt(org.X+last.X+last.Width, org.Y+last.Y+last.Height-font.Height())
		target.Bytes(pt, f.textColorImage(), image.Point{}, font, []byte(Ellipsis))
	}
}

// drawBox draws the text of pb with its top-left at pt on a line of the
// given height. Text is bottom-aligned within the line and clipped to the
// frame's left and right edges, dropping only whole clusters.
func (f *frameImpl) drawBox(target draw.Image, pb PositionedBox, pt image.Point, height int) {
	font := f.engine.Fonts.ForStyle(pb.Box.Style)
	pt.Y += height - font.Height()

	text := pb.Box.Text
	for len(text) > 0 && pt.X < f.rect.Min.X {
		n := firstClusterLen(text)
		pt.X += font.BytesWidth(text[:n])
		text = text[n:]
	}
	for len(text) > 0 && pt.X+font.BytesWidth(text) > f.rect.Max.X {
		text = trimLastCluster(text)
	}
	if len(text) == 0 {
		return
	}
	w := font.BytesWidth(text)

	style := pb.Box.Style
	if style.Bg != nil {
		if bg := f.allocColorImage(style.Bg); bg != nil {
			target.Draw(image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+font.Height()), bg, nil, image.Point{})
		}
	}

	col := f.colorImage(style)
	target.Bytes(pt, col, image.Point{}, font, text)

	if style.Underline || style.Link {
		y := pt.Y + font.Height() - 1
		target.Draw(image.Rect(pt.X, y, pt.X+w, y+1), col, nil, image.Point{})
	}
}

// colorImage returns the image used to paint text in style.
func (f *frameImpl) colorImage(style Style) draw.Image {
	switch {
	case style.Fg != nil:
		if img := f.allocColorImage(style.Fg); img != nil {
			return img
		}
	case style.Link:
		if img := f.allocColorImage(LinkBlue); img != nil {
			return img
		}
	}
	return f.textColorImage()
}

func (f *frameImpl) textColorImage() draw.Image {
	if f.textColor != nil {
		return f.textColor
	}
	return f.display.Black()
}

// allocColorImage returns a cached 1x1 replicated image of c.
func (f *frameImpl) allocColorImage(c color.Color) draw.Image {
	dc := draw.ToColor(c)
	if img, ok := f.colors[dc]; ok {
		return img
	}
	img, err := f.display.AllocImage(image.Rect(0, 0, 1, 1), f.display.ScreenImage().Pix(), true, dc)
	if err != nil {
		return nil
	}
	if f.colors == nil {
		f.colors = make(map[draw.Color]draw.Image)
	}
	f.colors[dc] = img
	return img
}
