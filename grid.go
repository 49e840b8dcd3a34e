package pixed

import "slices"

// Grid is an immutable raster of width*height cells stored row-major
// with a top-left origin: index = y*width + x.
//
// Every mutator returns a new Grid and leaves the receiver untouched, so
// a Grid can be retained as a history snapshot without copying. Reads
// never fail: out-of-range reads return Empty and out-of-range writes
// return the receiver unchanged.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a blank (all Empty) grid. Non-positive dimensions
// produce a zero-sized grid.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// GridFromCells builds a grid from cells. The slice is copied, padded
// with Empty or truncated so the result always holds width*height cells.
func GridFromCells(width, height int, cells []Cell) Grid {
	g := NewGrid(width, height)
	copy(g.cells, cells)
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Len returns width*height.
func (g Grid) Len() int { return len(g.cells) }

// Index converts coordinates to a cell index. ok is false when (x, y)
// lies outside the grid.
func (g Grid) Index(x, y int) (index int, ok bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1, false
	}
	return y*g.width + x, true
}

// Coords converts a cell index back to coordinates.
func (g Grid) Coords(index int) (x, y int, ok bool) {
	if index < 0 || index >= len(g.cells) {
		return -1, -1, false
	}
	return index % g.width, index / g.width, true
}

// At returns the cell at index, or Empty when index is out of range.
func (g Grid) At(index int) Cell {
	if index < 0 || index >= len(g.cells) {
		return Empty
	}
	return g.cells[index]
}

// CellAt returns the cell at (x, y), or Empty when outside the grid.
func (g Grid) CellAt(x, y int) Cell {
	i, ok := g.Index(x, y)
	if !ok {
		return Empty
	}
	return g.cells[i]
}

// Cells returns a copy of the cell slice.
func (g Grid) Cells() []Cell {
	return slices.Clone(g.cells)
}

// Equal reports whether both grids have the same dimensions and content.
func (g Grid) Equal(o Grid) bool {
	return g.width == o.width && g.height == o.height && slices.Equal(g.cells, o.cells)
}

// Set returns a grid with the cell at index replaced.
// An out-of-range index returns the receiver.
func (g Grid) Set(index int, c Cell) Grid {
	if index < 0 || index >= len(g.cells) || g.cells[index] == c {
		return g
	}
	n := g.clone()
	n.cells[index] = c
	return n
}

// SetAt is the coordinate form of Set.
func (g Grid) SetAt(x, y int, c Cell) Grid {
	i, ok := g.Index(x, y)
	if !ok {
		return g
	}
	return g.Set(i, c)
}

// Stamp writes c into a size×size square centered at (cx, cy), clipped
// to the grid. The square spans [cx-size/2, cx-size/2+size) on each
// axis, so odd sizes are exactly centered and even sizes lean up-left.
// A size below 1 stamps a single cell. Centers far outside the grid are
// accepted and simply clip away.
func (g Grid) Stamp(cx, cy, size int, c Cell) Grid {
	if size < 1 {
		size = 1
	}
	x0, y0 := cx-size/2, cy-size/2
	x1, y1 := x0+size, y0+size
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.width), min(y1, g.height)
	if x0 >= x1 || y0 >= y1 {
		return g
	}

	var n Grid
	copied := false
	for y := y0; y < y1; y++ {
		row := y * g.width
		for x := x0; x < x1; x++ {
			if g.cells[row+x] == c {
				continue
			}
			if !copied {
				n = g.clone()
				copied = true
			}
			n.cells[row+x] = c
		}
	}
	if !copied {
		return g
	}
	return n
}

// Fill returns a grid of the same size with every cell set to c.
func (g Grid) Fill(c Cell) Grid {
	n := NewGrid(g.width, g.height)
	if c != Empty {
		for i := range n.cells {
			n.cells[i] = c
		}
	}
	return n
}

// Count returns how many cells equal c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

func (g Grid) clone() Grid {
	return Grid{width: g.width, height: g.height, cells: slices.Clone(g.cells)}
}
