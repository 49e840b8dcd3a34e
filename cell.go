package pixed

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Cell is the value held by one grid position: either an opaque RGB
// color or Empty (fully transparent).
//
// The zero value is Empty, so a freshly allocated grid is blank.
// Cells are comparable with ==.
type Cell struct {
	r, g, b uint8
	opaque  bool
}

// Empty is the fully transparent cell.
var Empty Cell

// RGB returns an opaque cell.
func RGB(r, g, b uint8) Cell {
	return Cell{r: r, g: g, b: b, opaque: true}
}

// IsEmpty reports whether the cell is transparent.
func (c Cell) IsEmpty() bool {
	return !c.opaque
}

// RGB returns the color channels. Empty cells report zeros.
func (c Cell) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// NRGBA converts the cell to a non-premultiplied color.
// Empty maps to color.NRGBA{} (alpha 0).
func (c Cell) NRGBA() color.NRGBA {
	if !c.opaque {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}

// RGBA implements color.Color.
func (c Cell) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns "#rrggbb", or "transparent" for Empty.
func (c Cell) Hex() string {
	if !c.opaque {
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Hex()
}

// CellFromColor converts any color to a cell. Colors whose 8-bit alpha is
// below threshold become Empty; everything else becomes an opaque cell
// carrying the un-premultiplied RGB.
func CellFromColor(col color.Color, threshold uint8) Cell {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if n.A == 0 || n.A < threshold {
		return Empty
	}
	return RGB(n.R, n.G, n.B)
}

// ParseCell parses a color token as produced by the editors and by
// generative collaborators. Accepted forms:
//
//	transparent
//	#rgb  #rrggbb  (the leading '#' is optional)
//	rgb(r, g, b)
func ParseCell(s string) (Cell, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "transparent" || s == "":
		return Empty, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[len("rgb(") : len(s)-1])
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Empty, fmt.Errorf("pixed: invalid color %q", s)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB(r*17, g*17, b*17), nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Empty, fmt.Errorf("pixed: invalid color %q", s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	default:
		return Empty, fmt.Errorf("pixed: invalid color %q", s)
	}
}

// MustParseCell is like ParseCell but panics on error.
// Intended for package-level palettes and tests.
func MustParseCell(s string) Cell {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRGBFunc(args string) (Cell, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Empty, fmt.Errorf("pixed: invalid color rgb(%s)", args)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Empty, fmt.Errorf("pixed: invalid color rgb(%s)", args)
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}
