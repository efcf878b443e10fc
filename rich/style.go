package rich

import "image/color"

// Style defines visual attributes for a span of text.
type Style struct {
	// Colors (nil means use default)
	Fg color.Color
	Bg color.Color

	// Font variations
	Bold      bool
	Italic    bool
	Underline bool
	Link      bool // Rendered in LinkBlue and underlined unless Fg is set
}

// DefaultStyle returns the default body text style.
func DefaultStyle() Style {
	return Style{}
}

// LinkBlue is the standard blue color for hyperlinks.
var LinkBlue = color.RGBA{R: 0, G: 0, B: 238, A: 255}

// Common styles
var (
	StyleBold   = Style{Bold: true}
	StyleItalic = Style{Italic: true}
	StyleLink   = Style{Link: true, Fg: LinkBlue}
)
