package label

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face renders labels. A Face is immutable after creation and may be
// shared between canvases.
type Face struct {
	face   font.Face
	shaped *gotext.Font // nil for bitmap faces
	size   float64
}

var defaultFace = &Face{face: basicfont.Face7x13, size: 13}

// Default returns the built-in 7×13 bitmap face.
func Default() *Face {
	return defaultFace
}

// ParseTTF loads a TrueType or OpenType font at the given pixel size.
func ParseTTF(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) {
		return nil, ErrInvalidSize
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("label: failed to parse font: %w", err)
	}
	otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("label: failed to create face: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	shapedFace, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		_ = otFace.Close()
		return nil, fmt.Errorf("label: failed to parse font for shaping: %w", err)
	}

	return &Face{face: otFace, shaped: shapedFace.Font, size: size}, nil
}

// Size returns the nominal pixel size.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the distance from the top of the line to the baseline.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// Height returns the recommended line height in pixels.
func (f *Face) Height() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the advance width of s in whole pixels.
func (f *Face) Measure(s string) int {
	if s == "" {
		return 0
	}
	if f.shaped != nil {
		return shapeAdvance(f.shaped, s, f.size).Ceil()
	}
	return font.MeasureString(f.face, s).Ceil()
}

// Draw renders s in col with the top of its line box at (x, y).
func (f *Face) Draw(dst draw.Image, x, y int, s string, col color.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.P(x, y+f.Ascent()),
	}
	d.DrawString(s)
}
