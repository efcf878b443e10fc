package labeltest

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/linklabel/draw"
)

func TestMockImageImplementsInterface(t *testing.T) {
	var _ draw.Image = (*mockImage)(nil)
}

func TestDrawOpsRecorded(t *testing.T) {
	display := NewDisplay(image.Rect(0, 0, 100, 100))
	screen := display.ScreenImage()
	font, err := display.OpenFont("")
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	src, err := display.AllocImage(image.Rect(0, 0, 1, 1), 0, true, draw.Black)
	if err != nil {
		t.Fatalf("AllocImage: %v", err)
	}

	screen.Draw(image.Rect(0, 0, 10, 10), src, nil, image.Point{})
	end := screen.Bytes(image.Pt(5, 5), src, image.Point{}, font, []byte("héllo"))

	if want := image.Pt(5+5*FontWidth, 5); end != want {
		t.Errorf("Bytes returned %v, want %v", end, want)
	}

	want := []string{
		"screen <- fill (0,0)-(10,10) src: #000000ff,tiled",
		`screen <- string "héllo" atpoint: (5,5) fill: #000000ff,tiled`,
	}
	gdo := display.(GettableDrawOps)
	if diff := cmp.Diff(want, gdo.DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}

	gdo.Clear()
	if got := gdo.DrawOps(); len(got) != 0 {
		t.Errorf("DrawOps after Clear = %v, want empty", got)
	}
}

func TestMockFontMetrics(t *testing.T) {
	f := NewFont(7, 13)
	if got, want := f.Height(), 13; got != want {
		t.Errorf("Height() = %d, want %d", got, want)
	}
	if got, want := f.StringWidth("日本語"), 21; got != want {
		t.Errorf("StringWidth = %d, want %d", got, want)
	}
	if got, want := f.RunesWidth([]rune("ab")), 14; got != want {
		t.Errorf("RunesWidth = %d, want %d", got, want)
	}
}
