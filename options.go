package pixed

import "github.com/gogpu/pixed/label"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// 176×166 GUI background on a light grey base
//	c, err := pixed.NewCanvas(176, 166,
//	    pixed.WithBackground(pixed.MustParseCell("#c6c6c6")),
//	    pixed.WithTool(pixed.ToolSelect),
//	    pixed.WithZoomRange(1, 8),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	historyCapacity int
	background      Cell
	color           Cell
	tool            Tool
	brushSize       int
	viewport        Viewport
	minZoom         float64
	maxZoom         float64
	palette         Palette
	face            *label.Face
	importThreshold uint8
	exportScale     int
	interpolate     bool
}

// Defaults used when no option overrides them.
const (
	DefaultBrushSize       = 1
	DefaultImportThreshold = 10
	DefaultExportScale     = 4
	DefaultMinZoom         = 1
	DefaultMaxZoom         = 64
)

// DefaultColor is the initial active color.
var DefaultColor = RGB(0xff, 0x00, 0x4d)

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		historyCapacity: DefaultHistoryCapacity,
		background:      Empty,
		color:           DefaultColor,
		tool:            ToolPencil,
		brushSize:       DefaultBrushSize,
		viewport:        DefaultViewport,
		minZoom:         DefaultMinZoom,
		maxZoom:         DefaultMaxZoom,
		palette:         DefaultPalette,
		face:            label.Default(),
		importThreshold: DefaultImportThreshold,
		exportScale:     DefaultExportScale,
		interpolate:     true,
	}
}

// WithHistoryCapacity bounds the number of undo snapshots.
// Values below 1 keep the default of 20.
func WithHistoryCapacity(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n >= 1 {
			o.historyCapacity = n
		}
	}
}

// WithBackground fills the initial grid, and the grid created by every
// Resize, with c.
func WithBackground(c Cell) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithColor sets the initial active color. Empty is ignored; use the
// eraser to paint transparency.
func WithColor(c Cell) CanvasOption {
	return func(o *canvasOptions) {
		if !c.IsEmpty() {
			o.color = c
		}
	}
}

// WithTool sets the initially active tool.
func WithTool(t Tool) CanvasOption {
	return func(o *canvasOptions) {
		if t.valid() {
			o.tool = t
		}
	}
}

// WithBrushSize sets the pencil and eraser square size.
func WithBrushSize(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n >= 1 {
			o.brushSize = n
		}
	}
}

// WithViewport sets the initial zoom and device pixel ratio.
func WithViewport(v Viewport) CanvasOption {
	return func(o *canvasOptions) {
		o.viewport = v
	}
}

// WithZoomRange bounds the zoom accepted by SetZoom.
func WithZoomRange(minZoom, maxZoom float64) CanvasOption {
	return func(o *canvasOptions) {
		if minZoom > 0 && maxZoom >= minZoom {
			o.minZoom, o.maxZoom = minZoom, maxZoom
		}
	}
}

// WithPalette sets the swatches offered by the editor.
func WithPalette(p Palette) CanvasOption {
	return func(o *canvasOptions) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithLabelFace sets the face used to draw and measure text elements.
func WithLabelFace(f *label.Face) CanvasOption {
	return func(o *canvasOptions) {
		if f != nil {
			o.face = f
		}
	}
}

// WithImportThreshold sets the alpha below which imported pixels become
// Empty.
func WithImportThreshold(alpha uint8) CanvasOption {
	return func(o *canvasOptions) {
		o.importThreshold = alpha
	}
}

// WithExportScale sets the default upscale factor used by Export.
func WithExportScale(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n >= 1 {
			o.exportScale = n
		}
	}
}

// WithStrokeInterpolation controls whether pointer moves during a stroke
// are joined by a line. Without it, fast moves leave gaps between stamps.
func WithStrokeInterpolation(on bool) CanvasOption {
	return func(o *canvasOptions) {
		o.interpolate = on
	}
}
