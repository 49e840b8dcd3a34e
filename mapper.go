package pixed

import "math"

// Viewport describes how the grid is shown on screen. One grid cell
// covers Zoom*DevicePixelRatio view units on each axis.
type Viewport struct {
	Zoom             float64
	DevicePixelRatio float64
}

// DefaultViewport shows one cell per view unit.
var DefaultViewport = Viewport{Zoom: 1, DevicePixelRatio: 1}

// span returns view units per cell, falling back to 1 for unusable values.
func (v Viewport) span() float64 {
	z, d := v.Zoom, v.DevicePixelRatio
	if !(z > 0) || math.IsInf(z, 0) {
		z = 1
	}
	if !(d > 0) || math.IsInf(d, 0) {
		d = 1
	}
	return z * d
}

// Scale returns the view-to-grid factor: grid cells per view unit.
func (v Viewport) Scale() float64 {
	return 1 / v.span()
}

// Map converts a view position to grid coordinates on a width×height
// grid. The mapping is floor(p * Scale()) per axis, evaluated as
// floor(p / span) so zooms such as 0.5 or 3.75 stay exact at cell edges.
// ok is false when the result lies outside [0,width)×[0,height) or the
// position is not finite.
func (v Viewport) Map(p Point, width, height int) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return -1, -1, false
	}
	s := v.span()
	fx := math.Floor(p.X / s)
	fy := math.Floor(p.Y / s)
	if fx < 0 || fy < 0 || fx >= float64(width) || fy >= float64(height) {
		return -1, -1, false
	}
	return int(fx), int(fy), true
}

// ViewSize returns the on-screen size of a width×height grid.
func (v Viewport) ViewSize(width, height int) (w, h float64) {
	s := v.span()
	return float64(width) * s, float64(height) * s
}
