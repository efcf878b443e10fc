package rich

import (
	"golang.org/x/image/font"

	"github.com/rjkroege/linklabel/draw"
)

var _ = draw.Font((*FaceFont)(nil))

// FaceFont measures text with a golang.org/x/image font.Face. It lets
// layouts be computed without a devdraw connection. A FaceFont cannot be
// drawn with a devdraw Image.
type FaceFont struct {
	name string
	face font.Face
}

// NewFaceFont returns a draw.Font that measures with face.
func NewFaceFont(name string, face font.Face) *FaceFont {
	return &FaceFont{name: name, face: face}
}

func (f *FaceFont) Name() string { return f.name }

func (f *FaceFont) Height() int { return f.face.Metrics().Height.Ceil() }

func (f *FaceFont) BytesWidth(b []byte) int { return font.MeasureBytes(f.face, b).Ceil() }

func (f *FaceFont) RunesWidth(r []rune) int { return font.MeasureString(f.face, string(r)).Ceil() }

func (f *FaceFont) StringWidth(s string) int { return font.MeasureString(f.face, s).Ceil() }
