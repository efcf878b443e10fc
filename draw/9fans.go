//go:build !duitdraw && !windows
// +build !duitdraw,!windows

package draw

import (
	draw "9fans.net/go/draw"
)

const (
	Refnone = draw.Refnone

	Black       = draw.Black
	Darkgreen   = draw.Darkgreen
	Medblue     = draw.Medblue
	Notacolor   = draw.Notacolor
	Opaque      = draw.Opaque
	Paleyellow  = draw.Paleyellow
	Red         = draw.Red
	Transparent = draw.Transparent
	White       = draw.White
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

// NewDisplay connects to devdraw and returns the window's Display.
func NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}
