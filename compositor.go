package pixed

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixed/label"
)

// SelectionColor is the outline drawn around the selected element.
var SelectionColor = RGB(0xff, 0x00, 0x00)

// Render composites the grid and the overlay into a width×height image.
// Cells are drawn first (Empty as transparent), then elements in z-order.
// While the Select tool is active the selected element gets a 1 px
// outline just outside its bounds.
func (c *Canvas) Render() *image.NRGBA {
	img := c.composite()
	if c.tool == ToolSelect {
		if id, ok := c.overlay.Selected(); ok {
			if e, ok := c.overlay.Get(id); ok {
				outline(img, e.Bounds().Inset(-1), SelectionColor.NRGBA())
			}
		}
	}
	return img
}

// Bake flattens the overlay into the grid: the composite (without the
// selection outline) is sampled back into cells, where any pixel with
// non-zero alpha becomes an opaque cell. The result is committed as one
// history entry and the overlay is cleared.
//
// Baking an empty overlay does nothing and reports false.
func (c *Canvas) Bake() bool {
	c.EndStroke()
	if c.overlay.Len() == 0 {
		return false
	}
	img := c.composite()
	n := c.overlay.Len()
	c.overlay.Clear()
	c.commit(sample(img, 1), "bake")
	c.logger().Debug("overlay baked", "elements", n)
	return true
}

// composite renders cells and elements without selection chrome.
func (c *Canvas) composite() *image.NRGBA {
	g := c.Grid()
	img := rasterize(g)
	for _, e := range c.overlay.Elements() {
		switch e := e.(type) {
		case Slot:
			drawSlot(img, e)
		case Text:
			drawText(img, e, c.opts.face)
		}
	}
	return img
}

// rasterize converts grid to an image with one pixel per cell.
func rasterize(grid Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for i, cell := range grid.cells {
		if cell.IsEmpty() {
			continue
		}
		r, g, b := cell.RGB()
		o := i * 4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = 0xff
	}
	return img
}

// sample converts img back to a grid of the same size. Pixels with alpha
// below threshold become Empty; threshold 1 keeps every visible pixel.
func sample(img *image.NRGBA, threshold uint8) Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g.cells[y*g.width+x] = CellFromColor(img.NRGBAAt(b.Min.X+x, b.Min.Y+y), threshold)
		}
	}
	return g
}

// drawSlot paints the 18×18 bevel: a flat fill, a highlight along the
// right column and bottom row, then a shadow along the top row and left
// column. The shadow is drawn last and is one pixel short on each edge.
func drawSlot(dst *image.NRGBA, s Slot) {
	x, y := s.X, s.Y
	fillRect(dst, image.Rect(x, y, x+SlotSize, y+SlotSize), SlotFill.NRGBA())

	hi := SlotHighlight.NRGBA()
	fillRect(dst, image.Rect(x+SlotSize-1, y, x+SlotSize, y+SlotSize), hi)
	fillRect(dst, image.Rect(x, y+SlotSize-1, x+SlotSize, y+SlotSize), hi)

	sh := SlotShadow.NRGBA()
	fillRect(dst, image.Rect(x, y, x+SlotSize-1, y+1), sh)
	fillRect(dst, image.Rect(x, y, x+1, y+SlotSize-1), sh)
}

// drawText draws the label clipped to the element's box, so every
// painted pixel is inside the area that hit tests and selects it.
func drawText(dst *image.NRGBA, t Text, face *label.Face) {
	if t.Label == "" {
		return
	}
	box, ok := dst.SubImage(t.Bounds()).(*image.NRGBA)
	if !ok || box.Bounds().Empty() {
		return
	}
	face.Draw(box, t.X, t.Y, t.Label, TextColor.NRGBA())
}

// fillRect paints r clipped to dst.
func fillRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// outline strokes the 1 px border of r.
func outline(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	if r.Empty() {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}
