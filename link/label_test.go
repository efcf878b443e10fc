package link

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/linklabel/draw"
	"github.com/rjkroege/linklabel/labeltest"
	"github.com/rjkroege/linklabel/rich"
)

// tapRecorder is an Observer that remembers every notification.
type tapRecorder struct {
	labels []*Label
	tags   []string
}

func (tr *tapRecorder) LinkTapped(l *Label, tag string) {
	tr.labels = append(tr.labels, l)
	tr.tags = append(tr.tags, tag)
}

// newTestLabel returns a 200x50 label at (100,100) drawn with a 10x16
// fixed-width font.
func newTestLabel(t *testing.T, opts ...Option) *Label {
	t.Helper()
	display := labeltest.NewDisplay(image.Rect(0, 0, 800, 600))
	f := rich.NewFrame()
	f.Init(image.Rect(100, 100, 300, 150),
		rich.WithDisplay(display),
		rich.WithFont(labeltest.NewFont(10, 16)),
	)
	return NewLabel(f, opts...)
}

func tap(pt image.Point) PointerEvent {
	return PointerEvent{Points: []image.Point{pt}}
}

func TestAppendMonotonicity(t *testing.T) {
	l := newTestLabel(t)
	pieces := []struct {
		text   string
		tag    string
		tagged bool
	}{
		{"one ", "", false},
		{"two ", "t2", true},
		{"three ", "t3", true},
		{"", "empty", true},
		{"four ", "", false},
		{"日本 ", "t5", true},
	}

	var want []Record
	sum := 0
	for _, p := range pieces {
		c := rich.Plain(p.text)
		if p.tagged {
			l.AppendLink(c, p.tag)
			want = append(want, Record{Tag: p.tag, Start: sum, Length: c.Len()})
		} else {
			l.Append(c)
		}
		sum += c.Len()
	}

	if diff := cmp.Diff(want, l.Links()); diff != "" {
		t.Errorf("Links() mismatch (-want +got):\n%s", diff)
	}
	if got := l.Len(); got != sum {
		t.Errorf("Len() = %d, want %d", got, sum)
	}
	if got, want := l.Text(), "one two three four 日本 "; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestEndToEnd(t *testing.T) {
	rec := &tapRecorder{}
	l := newTestLabel(t)
	l.SetObserver(rec)

	l.Append(rich.Plain("Hello "))
	l.AppendLink(rich.Styled("World", rich.StyleLink), "t1")

	if got, want := l.Text(), "Hello World"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]Record{{Tag: "t1", Start: 6, Length: 5}}, l.Links()); diff != "" {
		t.Fatalf("Links() mismatch (-want +got):\n%s", diff)
	}

	// "Hello World" is 110 pixels wide and is centered at x=45, y=17.
	l.TouchesEnded(tap(image.Pt(45+85, 17+5))) // index 8
	l.TouchesEnded(tap(image.Pt(45+25, 17+5))) // index 2

	if diff := cmp.Diff([]string{"t1"}, rec.tags); diff != "" {
		t.Errorf("observed tags mismatch (-want +got):\n%s", diff)
	}
	if len(rec.labels) != 1 || rec.labels[0] != l {
		t.Errorf("observer did not receive the label")
	}
}

func TestEndToEndResolvedIndex(t *testing.T) {
	fe := &fakeEngine{used: image.Rect(0, 0, 200, 50)}
	rec := &tapRecorder{}
	l := newTestLabel(t, WithLayoutEngine(fe), WithObserver(rec))
	l.Append(rich.Plain("Hello "))
	l.AppendLink(rich.Plain("World"), "t1")

	fe.index = 8
	l.TouchesEnded(tap(image.Pt(1, 1)))
	fe.index = 2
	l.TouchesEnded(tap(image.Pt(1, 1)))

	if diff := cmp.Diff([]string{"t1"}, rec.tags); diff != "" {
		t.Errorf("observed tags mismatch (-want +got):\n%s", diff)
	}
}

func TestResetClearsLinks(t *testing.T) {
	tests := []struct {
		name  string
		reset func(l *Label)
	}{
		{"SetText(nil)", func(l *Label) { l.SetText(nil) }},
		{"SetText(value)", func(l *Label) { l.SetText(rich.Plain("Hello World")) }},
		{"SetText(empty)", func(l *Label) { l.SetText(rich.Content{}) }},
		{"SetString", func(l *Label) { l.SetString("Hello World") }},
		{"Clear", func(l *Label) { l.Clear() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLabel(t)
			l.AppendLink(rich.Plain("Hello "), "a")
			l.AppendLink(rich.Plain("World"), "b")

			tt.reset(l)

			if n := len(l.Links()); n != 0 {
				t.Errorf("%d links survived the reset", n)
			}
			for i := 0; i < 11; i++ {
				if tag, ok := l.TagAt(i); ok {
					t.Errorf("TagAt(%d) = %q after reset", i, tag)
				}
			}
		})
	}
}

func TestSetTextReplacesBuffer(t *testing.T) {
	l := newTestLabel(t)
	l.AppendLink(rich.Plain("old"), "old")

	l.SetText(rich.Plain("Hi "))
	l.AppendLink(rich.Plain("you"), "new")

	if got, want := l.Text(), "Hi you"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]Record{{Tag: "new", Start: 3, Length: 3}}, l.Links()); diff != "" {
		t.Errorf("Links() mismatch (-want +got):\n%s", diff)
	}
	if got := l.Frame().Content().String(); got != "Hi you" {
		t.Errorf("frame content = %q, want %q", got, "Hi you")
	}

	l.SetText(nil)
	if l.Len() != 0 || l.Content() != nil {
		t.Errorf("SetText(nil) left %d runes: %v", l.Len(), l.Content())
	}
}

func TestSetTextCopiesContent(t *testing.T) {
	l := newTestLabel(t)
	c := rich.Plain("abc")
	l.SetText(c)
	c[0].Text = "changed"

	if got := l.Text(); got != "abc" {
		t.Errorf("Text() = %q after caller modified its content", got)
	}
}

func TestDispatchNoObserver(t *testing.T) {
	l := newTestLabel(t)
	l.AppendLink(rich.Plain("Hello World"), "t1")
	l.SetInteractive(true)

	// Must neither panic nor call anything.
	l.TouchesEnded(tap(image.Pt(100, 25)))
}

func TestDispatchPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(l *Label)
		ev    PointerEvent
	}{
		{
			name:  "no links",
			setup: func(l *Label) { l.Append(rich.Plain("Hello World")) },
			ev:    tap(image.Pt(100, 25)),
		},
		{
			name:  "no points",
			setup: func(l *Label) { l.AppendLink(rich.Plain("Hello World"), "t") },
			ev:    PointerEvent{},
		},
		{
			name: "interaction disabled",
			setup: func(l *Label) {
				l.AppendLink(rich.Plain("Hello World"), "t")
				l.SetInteractive(false)
			},
			ev: tap(image.Pt(100, 25)),
		},
		{
			name: "miss",
			setup: func(l *Label) {
				l.Append(rich.Plain("Hello "))
				l.AppendLink(rich.Plain("World"), "t")
			},
			ev: tap(image.Pt(50, 25)),
		},
		{
			name: "zero-length link",
			setup: func(l *Label) {
				l.Append(rich.Plain("Hello "))
				l.AppendLink(nil, "t")
				l.Append(rich.Plain("World"))
			},
			ev: tap(image.Pt(105, 25)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &tapRecorder{}
			l := newTestLabel(t, WithObserver(rec))
			tt.setup(l)
			l.TouchesEnded(tt.ev)
			if len(rec.tags) != 0 {
				t.Errorf("observer called with %q", rec.tags)
			}
		})
	}
}

func TestDispatchUsesFirstPoint(t *testing.T) {
	rec := &tapRecorder{}
	l := newTestLabel(t, WithObserver(rec))
	l.AppendLink(rich.Plain("aaaaa"), "a")
	l.AppendLink(rich.Plain("bbbbb"), "b")

	// The 100 pixel text is centered at x=50.
	l.TouchesEnded(PointerEvent{Points: []image.Point{image.Pt(125, 25), image.Pt(55, 25)}})

	if diff := cmp.Diff([]string{"b"}, rec.tags); diff != "" {
		t.Errorf("observed tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchNotReentrant(t *testing.T) {
	var tags []string
	l := newTestLabel(t)
	l.SetObserver(ObserverFunc(func(l *Label, tag string) {
		tags = append(tags, tag)
		l.TouchesEnded(tap(image.Pt(100, 25)))
	}))
	l.AppendLink(rich.Plain("Hello World"), "t")

	l.TouchesEnded(tap(image.Pt(100, 25)))
	l.TouchesEnded(tap(image.Pt(100, 25)))

	if diff := cmp.Diff([]string{"t", "t"}, tags); diff != "" {
		t.Errorf("observed tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSetObserverEnablesInteraction(t *testing.T) {
	l := newTestLabel(t)
	if l.Interactive() {
		t.Fatalf("new label is interactive")
	}
	rec := &tapRecorder{}
	l.SetObserver(rec)
	if !l.Interactive() {
		t.Errorf("SetObserver did not enable interaction")
	}
	if l.Observer() != Observer(rec) {
		t.Errorf("Observer() did not return the observer")
	}
	l.SetObserver(nil)
	if l.Interactive() {
		t.Errorf("SetObserver(nil) left interaction enabled")
	}
}

func TestHandleMouse(t *testing.T) {
	rec := &tapRecorder{}
	l := newTestLabel(t, WithObserver(rec))
	l.Append(rich.Plain("Hello "))
	l.AppendLink(rich.Plain("World"), "t1")

	// Label is at (100,100); "World" starts at local x=45+60.
	onLink := image.Pt(100+45+65, 100+25)
	outside := image.Pt(10, 10)

	steps := []struct {
		m        draw.Mouse
		released bool
	}{
		{draw.Mouse{Point: onLink, Buttons: 1}, false},
		{draw.Mouse{Point: onLink, Buttons: 1}, false},
		{draw.Mouse{Point: onLink, Buttons: 0}, true},
		{draw.Mouse{Point: outside, Buttons: 1}, false},
		{draw.Mouse{Point: onLink, Buttons: 0}, false},
		{draw.Mouse{Point: onLink, Buttons: 4}, false},
		{draw.Mouse{Point: onLink, Buttons: 5}, false},
		{draw.Mouse{Point: onLink, Buttons: 1}, false},
		{draw.Mouse{Point: onLink, Buttons: 0}, true},
	}
	for i, s := range steps {
		if got := l.HandleMouse(s.m); got != s.released {
			t.Errorf("step %d: HandleMouse(%v) = %v, want %v", i, s.m, got, s.released)
		}
	}
	if diff := cmp.Diff([]string{"t1", "t1"}, rec.tags); diff != "" {
		t.Errorf("observed tags mismatch (-want +got):\n%s", diff)
	}

	l.SetObserver(nil)
	if l.HandleMouse(draw.Mouse{Point: onLink, Buttons: 1}) {
		t.Errorf("non-interactive label handled a press")
	}
}

func TestReleaseTracker(t *testing.T) {
	r := image.Rect(100, 100, 300, 150)
	var rt ReleaseTracker

	if _, ok := rt.Track(draw.Mouse{Point: image.Pt(120, 110), Buttons: 1}, r); ok {
		t.Errorf("press reported as a release")
	}
	ev, ok := rt.Track(draw.Mouse{Point: image.Pt(350, 160)}, r)
	if !ok {
		t.Fatalf("release of a press inside the rectangle was not reported")
	}
	if diff := cmp.Diff([]image.Point{image.Pt(250, 60)}, ev.Points); diff != "" {
		t.Errorf("event points mismatch (-want +got):\n%s", diff)
	}

	rt.Track(draw.Mouse{Point: image.Pt(120, 110), Buttons: 2}, r)
	rt.Reset()
	if _, ok := rt.Track(draw.Mouse{Point: image.Pt(120, 110)}, r); ok {
		t.Errorf("release reported after Reset")
	}
}

func TestLabelDelegatesToFrame(t *testing.T) {
	l := newTestLabel(t)
	l.SetWrap(rich.WrapTruncateTail)
	l.SetMaxLines(2)
	l.SetAlign(rich.AlignCenter)
	l.SetRect(image.Rect(0, 0, 40, 40))

	f := l.Frame()
	if f.Wrap() != rich.WrapTruncateTail || l.Wrap() != rich.WrapTruncateTail {
		t.Errorf("wrap not delegated: %v", f.Wrap())
	}
	if f.MaxLines() != 2 || l.MaxLines() != 2 {
		t.Errorf("max lines not delegated: %d", f.MaxLines())
	}
	if f.Engine().Align != rich.AlignCenter || l.Align() != rich.AlignCenter {
		t.Errorf("alignment not delegated: %v", f.Engine().Align)
	}
	if got, want := l.Rect(), image.Rect(0, 0, 40, 40); got != want || f.Rect() != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}

func TestLabelRedraw(t *testing.T) {
	display := labeltest.NewDisplay(image.Rect(0, 0, 800, 600))
	f := rich.NewFrame()
	f.Init(image.Rect(0, 0, 200, 50), rich.WithDisplay(display), rich.WithFont(labeltest.NewFont(10, 16)))
	l := NewLabel(f)
	l.Append(rich.Plain("Hello "))
	l.AppendLink(rich.Styled("World", rich.StyleLink), "t1")
	l.Redraw()

	want := []string{
		`screen <- string "Hello " atpoint: (45,17) fill: #000000ff`,
		`screen <- string "World" atpoint: (105,17) fill: #0000eeff,tiled`,
		"screen <- fill (105,32)-(155,33) src: #0000eeff,tiled",
	}
	if diff := cmp.Diff(want, display.(labeltest.GettableDrawOps).DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLabelNilFrame(t *testing.T) {
	rec := &tapRecorder{}
	l := NewLabel(nil, WithObserver(rec))
	l.AppendLink(rich.Plain("Hello"), "h")

	// Without a font nothing can be laid out, so no tap hits a link.
	for _, pt := range []image.Point{{0, 0}, {9999, 9999}} {
		l.TouchesEnded(tap(pt))
	}
	if len(rec.tags) != 0 {
		t.Errorf("observed tags %q from a label that cannot be laid out", rec.tags)
	}
}
