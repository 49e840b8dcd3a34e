package pixed

// Tool selects how pointer gestures are interpreted. Exactly one tool is
// active per canvas. The active tool only changes through SetTool, with
// one exception: a successful Picker read switches to Pencil.
type Tool uint8

const (
	// ToolSelect hit-tests overlay elements.
	ToolSelect Tool = iota
	// ToolPencil paints the active color with the brush.
	ToolPencil
	// ToolEraser paints Empty with the brush.
	ToolEraser
	// ToolBucket flood-fills with the active color.
	ToolBucket
	// ToolPicker copies a cell's color into the active color.
	ToolPicker
)

var toolNames = [...]string{
	ToolSelect: "select",
	ToolPencil: "pencil",
	ToolEraser: "eraser",
	ToolBucket: "bucket",
	ToolPicker: "picker",
}

func (t Tool) valid() bool {
	return int(t) < len(toolNames)
}

// String returns the lower-case tool name.
func (t Tool) String() string {
	if !t.valid() {
		return "unknown"
	}
	return toolNames[t]
}

// ParseTool maps a tool name back to its Tool.
func ParseTool(s string) (Tool, bool) {
	for i, name := range toolNames {
		if name == s {
			return Tool(i), true
		}
	}
	return 0, false
}

// PointerDown handles a press at a view position according to the
// active tool. Positions outside the grid are ignored by every tool.
func (c *Canvas) PointerDown(p Point) {
	x, y, ok := c.view.Map(p, c.width, c.height)
	if !ok {
		return
	}

	switch c.tool {
	case ToolSelect:
		c.SelectAt(x, y)
	case ToolPencil, ToolEraser:
		c.BeginStroke()
		c.paintAt(x, y)
	case ToolBucket:
		c.FillAt(x, y)
	case ToolPicker:
		c.PickAt(x, y)
	}
}

// PointerMove extends an active stroke to the cell under p. Moves while
// no stroke is active, or outside the grid, are ignored.
func (c *Canvas) PointerMove(p Point) {
	if c.stroke == nil {
		return
	}
	x, y, ok := c.view.Map(p, c.width, c.height)
	if !ok {
		// Do not join the next in-grid position to the exit point.
		c.stroke.hasLast = false
		return
	}
	c.paintAt(x, y)
}

// PointerUp ends the active stroke, if any, committing it as one
// history entry. Hosts should also call it when the pointer leaves the
// canvas.
func (c *Canvas) PointerUp() {
	c.EndStroke()
}

// SelectAt selects the topmost element containing (x, y), or clears the
// selection when there is none. It reports whether an element was hit.
func (c *Canvas) SelectAt(x, y int) bool {
	id, ok := c.overlay.HitTest(x, y)
	if !ok {
		c.overlay.ClearSelection()
		return false
	}
	c.overlay.Select(id)
	return true
}

// FillAt flood-fills the region containing (x, y) with the active color
// and commits once. It reports false, without committing, when (x, y)
// is outside the grid or the region already has the active color.
func (c *Canvas) FillAt(x, y int) bool {
	c.EndStroke()
	cur := c.Grid()
	i, ok := cur.Index(x, y)
	if !ok {
		return false
	}
	if cur.At(i) == c.color {
		return false
	}
	c.commit(FloodFill(cur, i, c.color), "fill")
	return true
}

// PickAt copies the color of (x, y) into the active color and switches
// to the pencil. Empty cells and positions outside the grid leave both
// the color and the tool unchanged.
func (c *Canvas) PickAt(x, y int) bool {
	cell := c.Grid().CellAt(x, y)
	if cell.IsEmpty() {
		return false
	}
	c.color = cell
	c.SetTool(ToolPencil)
	return true
}
