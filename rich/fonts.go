package rich

import (
	"github.com/rjkroege/linklabel/draw"
)

// Fonts holds the font variants used to measure and draw styled text.
// Only Regular is required; missing variants fall back to it.
type Fonts struct {
	Regular    draw.Font
	Bold       draw.Font
	Italic     draw.Font
	BoldItalic draw.Font
}

// ForStyle returns the appropriate font for the given style.
// Falls back to the regular font if the variant is not available.
func (fs *Fonts) ForStyle(style Style) draw.Font {
	switch {
	case style.Bold && style.Italic:
		if fs.BoldItalic != nil {
			return fs.BoldItalic
		}
	case style.Bold:
		if fs.Bold != nil {
			return fs.Bold
		}
	case style.Italic:
		if fs.Italic != nil {
			return fs.Italic
		}
	}
	return fs.Regular
}
