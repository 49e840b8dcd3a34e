// Package pixed is a layered pixel-canvas editing engine for small
// game assets: textures (16×16 to 64×64) and composite GUI backgrounds.
//
// # Overview
//
// A Canvas combines a raster Grid of cells, a vector Overlay of slots
// and text labels drawn on top of it, a bounded undo History and the
// active Tool. Hosts forward pointer events in view coordinates; the
// canvas maps them to cells through its Viewport and applies the tool.
//
// # Quick Start
//
//	import "github.com/gogpu/pixed"
//
//	c, err := pixed.NewCanvas(16, 16, pixed.WithZoomRange(1, 64))
//	if err != nil {
//		return err
//	}
//	c.SetZoom(32)
//
//	// One stroke: any number of moves, one history entry.
//	c.PointerDown(pixed.Pt(40, 40))
//	c.PointerMove(pixed.Pt(200, 40))
//	c.PointerUp()
//
//	c.Undo()
//
//	// Write a 4× PNG.
//	err = c.WritePNG(f, 4)
//
// # Grids and History
//
// Grid values are immutable. Every mutator returns a new Grid, so
// history snapshots are shared rather than copied. History keeps at most
// DefaultHistoryCapacity snapshots unless WithHistoryCapacity says
// otherwise; the oldest snapshot is evicted first and committing after
// an undo discards the redo branch.
//
// # Overlay and Bake
//
// Overlay elements keep their own ids and z-order and never touch the
// grid until Bake, which renders them and samples the result back into
// cells. Bake is one-way.
//
// # Generated Content
//
// DecodeLayout and DecodePixelList validate JSON produced by generative
// tools; ApplyLayout and ApplyPixelList feed the result into a canvas.
// Malformed items are dropped, never applied partially.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Call
// SetLogger to enable output; every record from a canvas carries its
// session id under the "canvas" key.
package pixed
