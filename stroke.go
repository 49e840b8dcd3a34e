package pixed

// stroke is an in-progress pencil or eraser gesture. Stamps accumulate
// in grid and reach history only when the stroke ends.
type stroke struct {
	base    Grid // snapshot the stroke started from
	grid    Grid // working result
	paint   Cell
	lastX   int
	lastY   int
	hasLast bool
}

// BeginStroke starts a stroke with the active tool's paint: the active
// color for the pencil, Empty for the eraser and for every other tool.
// A stroke that is already running is ended first.
func (c *Canvas) BeginStroke() {
	c.EndStroke()
	paint := c.color
	if c.tool != ToolPencil {
		paint = Empty
	}
	cur := c.history.Current()
	c.stroke = &stroke{base: cur, grid: cur, paint: paint}
}

// EndStroke finishes the active stroke. A stroke that changed at least
// one cell produces exactly one history commit; an unchanged stroke
// produces none. It reports whether a commit happened.
func (c *Canvas) EndStroke() bool {
	s := c.stroke
	if s == nil {
		return false
	}
	c.stroke = nil
	if s.grid.Equal(s.base) {
		return false
	}
	c.commit(s.grid, "stroke")
	return true
}

// Stroking reports whether a stroke is in progress.
func (c *Canvas) Stroking() bool {
	return c.stroke != nil
}

// paintAt stamps the brush at (x, y), joining it to the previous stamp
// with a line when interpolation is on.
func (c *Canvas) paintAt(x, y int) {
	s := c.stroke
	if s == nil {
		return
	}
	if s.hasLast && c.opts.interpolate {
		line(s.lastX, s.lastY, x, y, func(px, py int) {
			s.grid = s.grid.Stamp(px, py, c.brush, s.paint)
		})
	} else {
		s.grid = s.grid.Stamp(x, y, c.brush, s.paint)
	}
	s.lastX, s.lastY, s.hasLast = x, y, true
}

// line visits every cell of the Bresenham line from (x0, y0) to (x1, y1),
// both ends included.
func line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
