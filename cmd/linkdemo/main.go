// Linkdemo opens a window showing a label of styled texts and links and
// reports the tag of every link tapped on a message line below it.
//
// Usage:
//
//	linkdemo [-f font] [-B boldfont] [-I italicfont] [-W WxH] [-n maxlines]
//	         [-wrap word|char|clip|tail] [-align left|center|right] [-md markup] [-v]
//	         [-hit x,y]
//
// With -hit, no window is opened: the label is measured with a built-in
// font at the -W size and the tag under x,y is printed.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/rjkroege/linklabel/draw"
	"github.com/rjkroege/linklabel/link"
	"github.com/rjkroege/linklabel/markdown"
	"github.com/rjkroege/linklabel/rich"
)

const margin = 20

var fontflag = flag.String("f", "/lib/font/bit/lucsans/euro.8.font", "Regular font")
var boldfontflag = flag.String("B", "", "Bold font (defaults to the regular font)")
var italicfontflag = flag.String("I", "", "Italic font (defaults to the regular font)")
var winsize = flag.String("W", "640x480", "Window Size (WidthxHeight)")
var maxlinesflag = flag.Int("n", 0, "Maximum number of lines (0 is unlimited)")
var wrapflag = flag.String("wrap", "word", "Line breaking: word, char, clip or tail")
var alignflag = flag.String("align", "left", "Line alignment: left, center or right")
var markupflag = flag.String("md", "", "Label text as markup, e.g. 'see [docs](d1)'")
var verboseflag = flag.Bool("v", false, "Log pointer releases and taps")
var hitflag = flag.String("hit", "", "Print the tag under x,y in a -W sized label without opening a window")

func main() {
	flag.Parse()

	wrap, err := rich.ParseWrapMode(*wrapflag)
	if err != nil {
		log.Fatalf("bad -wrap: %v", err)
	}
	align, err := rich.ParseAlign(*alignflag)
	if err != nil {
		log.Fatalf("bad -align: %v", err)
	}

	var pieces []markdown.Piece
	if *markupflag != "" {
		pieces = markdown.Parse(*markupflag)
	} else {
		pieces = demoPieces()
	}

	if *hitflag != "" {
		size, err := parsePair(*winsize, "x")
		if err != nil {
			log.Fatalf("bad -W: %v", err)
		}
		pt, err := parsePair(*hitflag, ",")
		if err != nil {
			log.Fatalf("bad -hit: %v", err)
		}
		if tag, ok := headlessTag(pieces, size, pt, wrap, align, *maxlinesflag); ok {
			fmt.Println(tappedMessage(tag))
		} else {
			fmt.Println("no link at", pt)
		}
		return
	}

	display, err := draw.NewDisplay(nil, *fontflag, "linkdemo", *winsize)
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	if err := display.Attach(draw.Refnone); err != nil {
		log.Fatalf("failed to attach to window: %v", err)
	}

	d, err := newDemo(display, wrap, align, *maxlinesflag)
	if err != nil {
		log.Fatalf("can't set up demo: %v", err)
	}
	markdown.AppendPieces(d.label, pieces)
	d.resize(display.ScreenImage().R())

	mousectl := display.InitMouse()
	for {
		select {
		case m := <-mousectl.C:
			if d.label.HandleMouse(m) && *verboseflag {
				log.Printf("release at %v", m.Point)
			}
		case <-mousectl.Resize:
			if err := display.Attach(draw.Refnone); err != nil {
				log.Fatalf("failed to reattach to window: %v", err)
			}
			d.resize(display.ScreenImage().R())
		}
	}
}

// demo holds the label and its message line.
type demo struct {
	display draw.Display
	label   *link.Label
	message rich.Frame
	height  int
}

func newDemo(display draw.Display, wrap rich.WrapMode, align rich.Align, maxLines int) (*demo, error) {
	font, err := display.OpenFont(*fontflag)
	if err != nil {
		return nil, fmt.Errorf("open font %q: %w", *fontflag, err)
	}
	background, err := display.AllocImage(image.Rect(0, 0, 1, 1), display.ScreenImage().Pix(), true, draw.White)
	if err != nil {
		return nil, fmt.Errorf("allocate background: %w", err)
	}
	messagebg, err := display.AllocImage(image.Rect(0, 0, 1, 1), display.ScreenImage().Pix(), true, draw.Paleyellow)
	if err != nil {
		return nil, fmt.Errorf("allocate message background: %w", err)
	}

	opts := []rich.Option{
		rich.WithDisplay(display),
		rich.WithBackground(background),
		rich.WithFont(font),
		rich.WithAlign(align),
		rich.WithWrap(wrap),
		rich.WithMaxLines(maxLines),
	}
	if bold := openOptionalFont(display, *boldfontflag); bold != nil {
		opts = append(opts, rich.WithBoldFont(bold))
	}
	if italic := openOptionalFont(display, *italicfontflag); italic != nil {
		opts = append(opts, rich.WithItalicFont(italic))
	}

	d := &demo{
		display: display,
		message: rich.NewFrame(),
		height:  font.Height(),
	}
	frame := rich.NewFrame()
	frame.Init(image.Rectangle{}, opts...)
	d.message.Init(image.Rectangle{},
		rich.WithDisplay(display),
		rich.WithBackground(messagebg),
		rich.WithFont(font),
		rich.WithWrap(rich.WrapTruncateTail),
		rich.WithMaxLines(1),
	)

	d.label = link.NewLabel(frame, link.WithObserver(link.ObserverFunc(d.tapped)))
	d.label.Clear()
	return d, nil
}

func openOptionalFont(display draw.Display, name string) draw.Font {
	if name == "" {
		return nil
	}
	f, err := display.OpenFont(name)
	if err != nil {
		log.Printf("can't open font %q: %v", name, err)
		return nil
	}
	return f
}

func (d *demo) tapped(_ *link.Label, tag string) {
	if *verboseflag {
		log.Printf("tapped %q", tag)
	}
	d.message.SetContent(rich.Plain(tappedMessage(tag)))
	d.message.Redraw()
	d.flush()
}

func (d *demo) resize(screen image.Rectangle) {
	d.display.ScreenImage().Draw(screen, d.display.White(), nil, image.Point{})
	lr, mr := splitScreen(screen, d.height, margin)
	d.label.SetRect(lr)
	d.message.SetRect(mr)
	d.label.Redraw()
	d.message.Redraw()
	d.flush()
}

func (d *demo) flush() {
	if err := d.display.Flush(); err != nil {
		log.Printf("flush: %v", err)
	}
}
