//go:build duitdraw || windows
// +build duitdraw windows

package draw

import (
	draw "github.com/ktye/duitdraw"
)

const (
	Refnone = draw.Refnone

	Medblue     = draw.Medblue
	Notacolor   = draw.Notacolor
	Paleyellow  = draw.Paleyellow
	Transparent = draw.Transparent
	White       = draw.White

	// Not exported by duitdraw; values match devdraw's.
	Black     Color = 0x000000FF
	Darkgreen Color = 0x448844FF
	Opaque    Color = 0xFFFFFFFF
	Red       Color = 0xFF0000FF
)

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawFont    = draw.Font
	drawImage   = draw.Image
	Mousectl    = draw.Mousectl
	Mouse       = draw.Mouse
	Pix         = draw.Pix
)

var Init = draw.Init

// NewDisplay opens a duitdraw window and returns its Display.
func NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}
