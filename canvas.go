package pixed

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/pixed/label"
)

// Canvas is one editing session: a pixel grid with undo history, a
// vector overlay, the active tool and its parameters.
//
// A Canvas is not safe for concurrent use. Hosts drive it from a single
// goroutine (typically their event loop).
type Canvas struct {
	id     string
	opts   canvasOptions
	width  int
	height int

	history *History
	overlay *Overlay
	stroke  *stroke

	tool  Tool
	color Cell
	brush int
	view  Viewport
}

// NewCanvas creates a canvas of the given size. The initial grid is
// filled with the background (Empty unless WithBackground is given) and
// is the only history entry.
//
//	c, err := pixed.NewCanvas(16, 16)
//	c.PointerDown(pixed.Pt(3, 4))
//	c.PointerUp()
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Canvas{
		id:      uuid.NewString(),
		opts:    options,
		width:   width,
		height:  height,
		overlay: NewOverlay(),
		tool:    options.tool,
		color:   options.color,
		brush:   options.brushSize,
	}
	c.history = NewHistory(c.blank(width, height), options.historyCapacity)
	c.view = options.viewport
	c.view.Zoom = c.clampZoom(c.view.Zoom)

	c.logger().Debug("canvas created", "width", width, "height", height, "tool", c.tool.String())
	return c, nil
}

// MaxSide is the largest accepted canvas width or height.
const MaxSide = 4096

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

func (c *Canvas) blank(width, height int) Grid {
	g := NewGrid(width, height)
	if !c.opts.background.IsEmpty() {
		g = g.Fill(c.opts.background)
	}
	return g
}

func (c *Canvas) logger() *slog.Logger {
	return Logger().With("canvas", c.id)
}

// ID returns the session id attached to this canvas's log records.
func (c *Canvas) ID() string { return c.id }

// Width returns the grid width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the grid height in cells.
func (c *Canvas) Height() int { return c.height }

// Grid returns the current pixel grid. While a stroke is in progress
// this is the stroke's working grid, which is not yet in history.
func (c *Canvas) Grid() Grid {
	if c.stroke != nil {
		return c.stroke.grid
	}
	return c.history.Current()
}

// Overlay returns the canvas's vector layer.
func (c *Canvas) Overlay() *Overlay { return c.overlay }

// Palette returns the swatches configured for this canvas.
func (c *Canvas) Palette() Palette { return c.opts.palette }

// Face returns the face used to draw and measure text elements.
func (c *Canvas) Face() *label.Face { return c.opts.face }

// Resize discards the grid, the history and the overlay and starts over
// with a blank width×height grid. Tool, color, brush and view settings
// are kept.
func (c *Canvas) Resize(width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	c.stroke = nil
	c.width, c.height = width, height
	c.history.Reset(c.blank(width, height))
	c.overlay.Clear()
	c.logger().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// commit appends g to history. Callers guarantee g has the canvas size.
func (c *Canvas) commit(g Grid, reason string) {
	c.history.Commit(g)
	c.logger().Debug("history commit", "reason", reason, "index", c.history.Index(), "len", c.history.Len())
}

// Commit records g as the new current grid. It reports false, and
// records nothing, when g does not match the canvas size or equals the
// current grid. An active stroke is ended first.
func (c *Canvas) Commit(g Grid) bool {
	c.EndStroke()
	if g.Width() != c.width || g.Height() != c.height {
		c.logger().Warn("commit dropped: size mismatch",
			"want", fmt.Sprintf("%dx%d", c.width, c.height),
			"got", fmt.Sprintf("%dx%d", g.Width(), g.Height()))
		return false
	}
	if g.Equal(c.history.Current()) {
		return false
	}
	c.commit(g, "external")
	return true
}

// Clear commits a grid filled with the background.
func (c *Canvas) Clear() bool {
	return c.Commit(c.blank(c.width, c.height))
}

// HistoryLen returns the number of retained snapshots.
func (c *Canvas) HistoryLen() int { return c.history.Len() }

// HistoryIndex returns the position of the current snapshot.
func (c *Canvas) HistoryIndex() int { return c.history.Index() }

// CanUndo reports whether Undo would change the grid.
func (c *Canvas) CanUndo() bool { return c.history.CanUndo() || c.strokeDirty() }

// CanRedo reports whether Redo would change the grid.
func (c *Canvas) CanRedo() bool { return !c.strokeDirty() && c.history.CanRedo() }

func (c *Canvas) strokeDirty() bool {
	return c.stroke != nil && !c.stroke.grid.Equal(c.stroke.base)
}

// Undo ends any active stroke and steps back one snapshot. It reports
// false when already at the oldest snapshot.
func (c *Canvas) Undo() bool {
	c.EndStroke()
	_, ok := c.history.Undo()
	return ok
}

// Redo steps forward one snapshot. It reports false when nothing was
// undone or a commit discarded the redo branch.
func (c *Canvas) Redo() bool {
	c.EndStroke()
	_, ok := c.history.Redo()
	return ok
}

// Tool returns the active tool.
func (c *Canvas) Tool() Tool { return c.tool }

// SetTool changes the active tool, ending any active stroke. Unknown
// tools are ignored.
func (c *Canvas) SetTool(t Tool) {
	if !t.valid() || t == c.tool {
		return
	}
	c.EndStroke()
	c.tool = t
}

// Color returns the active color.
func (c *Canvas) Color() Cell { return c.color }

// SetColor changes the active color. Empty is rejected; erasing is done
// with ToolEraser.
func (c *Canvas) SetColor(col Cell) bool {
	if col.IsEmpty() {
		return false
	}
	c.color = col
	return true
}

// BrushSize returns the pencil and eraser square size.
func (c *Canvas) BrushSize() int { return c.brush }

// SetBrushSize changes the brush size. Sizes below 1 become 1.
func (c *Canvas) SetBrushSize(n int) {
	c.brush = max(n, 1)
}

// Viewport returns the current view parameters.
func (c *Canvas) Viewport() Viewport { return c.view }

// SetZoom changes the zoom, clamped to the configured range, and
// returns the zoom actually applied.
func (c *Canvas) SetZoom(z float64) float64 {
	c.view.Zoom = c.clampZoom(z)
	return c.view.Zoom
}

// SetDevicePixelRatio records the host display's pixel ratio.
// Non-positive ratios reset it to 1.
func (c *Canvas) SetDevicePixelRatio(r float64) {
	if !(r > 0) {
		r = 1
	}
	c.view.DevicePixelRatio = r
}

func (c *Canvas) clampZoom(z float64) float64 {
	if !(z > 0) {
		z = c.opts.minZoom
	}
	return min(max(z, c.opts.minZoom), c.opts.maxZoom)
}

// AddElement adds an element of the given kind with its defaults. The
// default text box grows to fit the label in the canvas's face.
func (c *Canvas) AddElement(kind ElementKind, at image.Point) ElementID {
	if kind != KindText {
		return c.overlay.Add(kind, at)
	}
	return c.AddText(at, DefaultTextLabel, c.textBox(DefaultTextLabel, DefaultTextWidth, DefaultTextHeight))
}

// textBox returns a box of at least w×h that holds text in the face.
func (c *Canvas) textBox(text string, w, h int) image.Point {
	return image.Pt(max(w, c.opts.face.Measure(text)), max(h, c.opts.face.Height()))
}

// AddText adds a text element. The label is normalized. A zero box
// dimension is replaced by the label's measured width or the face's
// line height.
func (c *Canvas) AddText(at image.Point, text string, box image.Point) ElementID {
	text = label.Normalize(text)
	if box.X == 0 {
		box.X = c.opts.face.Measure(text)
	}
	if box.Y == 0 {
		box.Y = c.opts.face.Height()
	}
	return c.overlay.AddText(at, text, box)
}

// UpdateElement applies u to the element with the given id. A new label
// is normalized before it is stored.
func (c *Canvas) UpdateElement(id ElementID, u ElementUpdate) bool {
	if u.Label != nil {
		u = u.Relabel(label.Normalize(*u.Label))
	}
	return c.overlay.Update(id, u)
}

// RemoveElement deletes the element with the given id.
func (c *Canvas) RemoveElement(id ElementID) bool {
	return c.overlay.Remove(id)
}

// RemoveSelected deletes the selected element, if any.
func (c *Canvas) RemoveSelected() bool {
	id, ok := c.overlay.Selected()
	if !ok {
		return false
	}
	return c.overlay.Remove(id)
}
