package pixed

// Palette is an ordered list of swatches offered to the user.
type Palette []Cell

// DefaultPalette is the 16-color palette of the texture painter.
var DefaultPalette = Palette{
	MustParseCell("#000000"), MustParseCell("#1d2b53"), MustParseCell("#7e2553"), MustParseCell("#008751"),
	MustParseCell("#ab5236"), MustParseCell("#5f574f"), MustParseCell("#c2c3c7"), MustParseCell("#fff1e8"),
	MustParseCell("#ff004d"), MustParseCell("#ffa300"), MustParseCell("#ffec27"), MustParseCell("#00e436"),
	MustParseCell("#29adff"), MustParseCell("#83769c"), MustParseCell("#ff77a8"), MustParseCell("#ffccaa"),
}

// GUIPalette extends DefaultPalette with the greys used by inventory
// backgrounds (slot fill, shadow and highlight).
var GUIPalette = append(append(Palette{}, DefaultPalette...),
	SlotFill, SlotShadow, SlotHighlight,
)

// Contains reports whether c is one of the swatches.
func (p Palette) Contains(c Cell) bool {
	for _, s := range p {
		if s == c {
			return true
		}
	}
	return false
}

// At returns the swatch at i, or Empty when i is out of range.
func (p Palette) At(i int) Cell {
	if i < 0 || i >= len(p) {
		return Empty
	}
	return p[i]
}
