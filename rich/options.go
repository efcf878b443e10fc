package rich

import (
	"github.com/rjkroege/linklabel/draw"
)

// WithDisplay is an Option that sets the display for the frame.
func WithDisplay(d draw.Display) Option {
	return func(f *frameImpl) {
		f.display = d
	}
}

// WithTarget is an Option that sets the image the frame draws into.
// The default is the display's screen image.
func WithTarget(t draw.Image) Option {
	return func(f *frameImpl) {
		f.target = t
	}
}

// WithBackground is an Option that sets the background image for the frame.
func WithBackground(b draw.Image) Option {
	return func(f *frameImpl) {
		f.background = b
	}
}

// WithFont is an Option that sets the font for the frame.
func WithFont(f draw.Font) Option {
	return func(fi *frameImpl) {
		fi.engine.Fonts.Regular = f
	}
}

// WithTextColor is an Option that sets the text color image for the frame.
func WithTextColor(c draw.Image) Option {
	return func(fi *frameImpl) {
		fi.textColor = c
	}
}

// WithBoldFont is an Option that sets the bold font variant for the frame.
func WithBoldFont(f draw.Font) Option {
	return func(fi *frameImpl) {
		fi.engine.Fonts.Bold = f
	}
}

// WithItalicFont is an Option that sets the italic font variant for the frame.
func WithItalicFont(f draw.Font) Option {
	return func(fi *frameImpl) {
		fi.engine.Fonts.Italic = f
	}
}

// WithBoldItalicFont is an Option that sets the bold-italic font variant for the frame.
func WithBoldItalicFont(f draw.Font) Option {
	return func(fi *frameImpl) {
		fi.engine.Fonts.BoldItalic = f
	}
}

// WithAlign is an Option that sets the horizontal alignment of lines.
func WithAlign(a Align) Option {
	return func(fi *frameImpl) {
		fi.engine.Align = a
	}
}

// WithWrap is an Option that sets the line breaking mode.
func WithWrap(w WrapMode) Option {
	return func(fi *frameImpl) {
		fi.wrap = w
	}
}

// WithMaxLines is an Option that limits the number of displayed lines.
// Zero means no limit.
func WithMaxLines(n int) Option {
	return func(fi *frameImpl) {
		fi.maxLines = n
	}
}
