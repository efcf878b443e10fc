package link

import (
	"image"

	"github.com/rjkroege/linklabel/rich"
)

// TextLayout is a laid-out block of text in its own coordinate space.
type TextLayout interface {
	// UsedRect is the bounding rectangle of the laid-out glyphs.
	UsedRect() image.Rectangle
	// Charofpt returns the index of the character nearest pt.
	Charofpt(pt image.Point) int
}

// LayoutEngine builds a TextLayout for text in a container of the given
// size.
type LayoutEngine interface {
	NewLayout(text rich.Content, size image.Point, wrap rich.WrapMode, maxLines int) TextLayout
}

// RichEngine adapts a rich.Engine to LayoutEngine.
func RichEngine(e *rich.Engine) LayoutEngine {
	return richEngine{e}
}

type richEngine struct {
	e *rich.Engine
}

// NewLayout returns nil when the engine has no regular font, since nothing
// can be measured.
func (re richEngine) NewLayout(text rich.Content, size image.Point, wrap rich.WrapMode, maxLines int) TextLayout {
	if re.e == nil || re.e.Fonts.Regular == nil {
		return nil
	}
	return re.e.Layout(text, size, wrap, maxLines)
}

// Resolver maps pointer locations in a label to character offsets.
type Resolver struct {
	engine LayoutEngine
}

// NewResolver returns a Resolver that lays text out with engine.
func NewResolver(engine LayoutEngine) *Resolver {
	return &Resolver{engine: engine}
}

// CharacterIndex returns the offset of the character under pt, a point
// relative to the top-left of a label of the given size. The text is laid
// out afresh on every call. The rendered block is centered in the label,
// so pt is translated into the block's coordinates before the lookup.
// It returns false if there is no layout engine, no text, or the engine
// cannot lay the text out.
func (r *Resolver) CharacterIndex(pt, size image.Point, text rich.Content, wrap rich.WrapMode, maxLines int) (int, bool) {
	if r == nil || r.engine == nil || text.Len() == 0 {
		return 0, false
	}
	layout := r.engine.NewLayout(text, size, wrap, maxLines)
	if layout == nil {
		return 0, false
	}
	off := rich.CenterOffset(size, layout.UsedRect())
	return layout.Charofpt(pt.Sub(off)), true
}
