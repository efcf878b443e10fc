package link

import (
	"image"

	"github.com/rjkroege/linklabel/draw"
	"github.com/rjkroege/linklabel/rich"
)

// Label displays styled text in a rich.Frame and reports taps on tagged
// ranges of that text to an Observer.
type Label struct {
	frame    rich.Frame
	registry *Registry
	resolver *Resolver
	observer Observer

	content rich.Content
	nrunes  int

	interactive bool
	dispatching bool
	tracker     ReleaseTracker
}

// Option configures a Label.
type Option func(*Label)

// WithLayoutEngine is an Option that replaces the engine used for hit
// testing. By default the frame's own engine is used so that hit testing
// agrees with what is drawn.
func WithLayoutEngine(e LayoutEngine) Option {
	return func(l *Label) {
		l.resolver = NewResolver(e)
	}
}

// WithObserver is an Option equivalent to calling SetObserver.
func WithObserver(o Observer) Option {
	return func(l *Label) {
		l.SetObserver(o)
	}
}

// NewLabel returns an empty Label that renders into frame. The caller
// initializes the frame (rectangle, display, fonts) before or after.
// A nil frame is replaced with an uninitialized rich.Frame.
func NewLabel(frame rich.Frame, opts ...Option) *Label {
	if frame == nil {
		frame = rich.NewFrame()
	}
	l := &Label{
		frame:    frame,
		registry: NewRegistry(),
	}
	l.resolver = NewResolver(RichEngine(frame.Engine()))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetObserver sets the observer notified of link taps. As a side effect,
// a non-nil observer enables pointer handling on the label and a nil one
// disables it.
func (l *Label) SetObserver(o Observer) {
	l.observer = o
	l.interactive = o != nil
	if !l.interactive {
		l.tracker.Reset()
	}
}

// Observer returns the current observer.
func (l *Label) Observer() Observer {
	return l.observer
}

// SetInteractive enables or disables pointer handling without changing
// the observer.
func (l *Label) SetInteractive(on bool) {
	l.interactive = on
	if !on {
		l.tracker.Reset()
	}
}

// Interactive reports whether the label handles pointer events.
func (l *Label) Interactive() bool {
	return l.interactive
}

// SetText replaces the label's text wholesale and forgets every link.
// A nil c empties the label.
func (l *Label) SetText(c rich.Content) {
	l.registry.Reset()
	if c == nil {
		l.content = nil
	} else {
		l.content = append(rich.Content{}, c...)
	}
	l.nrunes = l.content.Len()
	l.frame.SetContent(l.content)
}

// SetString replaces the label's text with unstyled s.
func (l *Label) SetString(s string) {
	l.SetText(rich.Plain(s))
}

// Clear empties the label and forgets every link.
func (l *Label) Clear() {
	l.SetText(nil)
}

// Append adds text that does not respond to taps.
func (l *Label) Append(c rich.Content) {
	l.appendSpan(c, "", false)
}

// AppendLink adds text that reports tag to the observer when tapped.
func (l *Label) AppendLink(c rich.Content, tag string) {
	l.appendSpan(c, tag, true)
}

func (l *Label) appendSpan(c rich.Content, tag string, tagged bool) {
	n := c.Len()
	if tagged {
		l.registry.Append(tag, n, l.nrunes)
	}
	l.content = l.content.Concat(c)
	l.nrunes += n
	l.frame.SetContent(l.content)
}

// Content returns the label's styled text. The result must not be
// modified.
func (l *Label) Content() rich.Content {
	return l.content
}

// Text returns the label's text without styling.
func (l *Label) Text() string {
	return l.content.String()
}

// Len returns the number of runes in the label's text.
func (l *Label) Len() int {
	return l.nrunes
}

// Links returns the label's link records in the order they were added.
func (l *Label) Links() []Record {
	return l.registry.Records()
}

// TagAt returns the tag of the link covering the rune offset i.
func (l *Label) TagAt(i int) (string, bool) {
	return l.registry.FindTag(i)
}

// Frame returns the frame the label renders into.
func (l *Label) Frame() rich.Frame {
	return l.frame
}

func (l *Label) Rect() image.Rectangle     { return l.frame.Rect() }
func (l *Label) SetRect(r image.Rectangle) { l.frame.SetRect(r) }
func (l *Label) SetWrap(w rich.WrapMode)   { l.frame.SetWrap(w) }
func (l *Label) Wrap() rich.WrapMode       { return l.frame.Wrap() }
func (l *Label) SetMaxLines(n int)         { l.frame.SetMaxLines(n) }
func (l *Label) MaxLines() int             { return l.frame.MaxLines() }
func (l *Label) SetAlign(a rich.Align)     { l.frame.Engine().Align = a }
func (l *Label) Align() rich.Align         { return l.frame.Engine().Align }
func (l *Label) Redraw()                   { l.frame.Redraw() }

// HandleMouse feeds a mouse sample in screen coordinates to the label.
// Releases of presses that began inside the label are dispatched with
// TouchesEnded. It reports whether a release was dispatched.
func (l *Label) HandleMouse(m draw.Mouse) bool {
	if !l.interactive {
		return false
	}
	ev, ok := l.tracker.Track(m, l.frame.Rect())
	if !ok {
		return false
	}
	l.TouchesEnded(ev)
	return true
}

// TouchesEnded handles the release of a pointer. If the first point of ev
// lies on a link, the observer is called with the link's tag before
// TouchesEnded returns. A release without an observer, links, points or
// layout engine does nothing. Releases delivered from within the
// observer are ignored.
func (l *Label) TouchesEnded(ev PointerEvent) {
	if l.observer == nil || !l.interactive || l.dispatching {
		return
	}
	if l.registry.Len() == 0 || len(ev.Points) == 0 {
		return
	}

	r := l.frame.Rect()
	i, ok := l.resolver.CharacterIndex(ev.Points[0], r.Size(), l.content, l.frame.Wrap(), l.frame.MaxLines())
	if !ok {
		return
	}
	tag, ok := l.registry.FindTag(i)
	if !ok {
		return
	}

	l.dispatching = true
	defer func() { l.dispatching = false }()
	l.observer.LinkTapped(l, tag)
}
