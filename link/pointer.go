package link

import (
	"image"

	"github.com/rjkroege/linklabel/draw"
)

// PointerEvent is the end of a touch or click. Points are in
// label-local coordinates; only the first is used for hit testing.
type PointerEvent struct {
	Points []image.Point
}

// ReleaseTracker turns a stream of mouse samples into release events.
// Presses are remembered but otherwise ignored.
type ReleaseTracker struct {
	pressed bool // a button went down inside the rectangle
	buttons int
}

// Track consumes the mouse sample m, in screen coordinates, for a label
// occupying r. It returns an event local to r when m releases the last
// button of a press that began inside r. The release point itself may lie
// outside r.
func (rt *ReleaseTracker) Track(m draw.Mouse, r image.Rectangle) (PointerEvent, bool) {
	prev := rt.buttons
	rt.buttons = m.Buttons

	switch {
	case prev == 0 && m.Buttons != 0:
		rt.pressed = m.Point.In(r)
	case prev != 0 && m.Buttons == 0:
		pressed := rt.pressed
		rt.pressed = false
		if pressed {
			return PointerEvent{Points: []image.Point{m.Point.Sub(r.Min)}}, true
		}
	}
	return PointerEvent{}, false
}

// Reset forgets any press in progress.
func (rt *ReleaseTracker) Reset() {
	rt.pressed = false
	rt.buttons = 0
}
