package pixed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pixed/label"
)

// LayoutItem is one validated element of a generated layout.
type LayoutItem struct {
	Kind ElementKind
	X, Y int
	Text string
}

// Layout text boxes when ingesting generated layouts.
const (
	LayoutTextWidth  = 50
	LayoutTextHeight = 10
	LayoutTextLabel  = "Title"
)

// coordLimit bounds ingested coordinates so element bounds arithmetic
// cannot overflow.
const coordLimit = math.MaxInt32

type rawLayoutItem struct {
	Type *string  `json:"type"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Text *string  `json:"text"`
}

type rawLayout struct {
	Elements []json.RawMessage `json:"elements"`
}

type rawPixels struct {
	Pixels []string `json:"pixels"`
}

// DecodeLayout parses layout JSON produced by a generative collaborator.
// Both {"elements": [...]} and a bare array are accepted, optionally
// wrapped in a markdown code fence. Items missing type, x or y, with an
// unknown type, or with coordinates outside the int32 range are dropped
// individually. When no item survives, the error wraps
// ErrMalformedLayout.
func DecodeLayout(data []byte) ([]LayoutItem, error) {
	data = stripFence(data)

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		var obj rawLayout
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedLayout, err)
		}
		raws = obj.Elements
	}

	items := make([]LayoutItem, 0, len(raws))
	for i, msg := range raws {
		item, err := decodeLayoutItem(msg)
		if err != nil {
			Logger().Warn("layout item dropped", "index", i, "err", err)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no usable items among %d", ErrMalformedLayout, len(raws))
	}
	return items, nil
}

func decodeLayoutItem(msg json.RawMessage) (LayoutItem, error) {
	var raw rawLayoutItem
	if err := json.Unmarshal(msg, &raw); err != nil {
		return LayoutItem{}, err
	}
	if raw.Type == nil || raw.X == nil || raw.Y == nil {
		return LayoutItem{}, fmt.Errorf("missing type, x or y")
	}
	kind, ok := ParseElementKind(*raw.Type)
	if !ok {
		return LayoutItem{}, fmt.Errorf("unknown type %q", *raw.Type)
	}
	x, err := layoutCoord(*raw.X)
	if err != nil {
		return LayoutItem{}, fmt.Errorf("x: %w", err)
	}
	y, err := layoutCoord(*raw.Y)
	if err != nil {
		return LayoutItem{}, fmt.Errorf("y: %w", err)
	}

	item := LayoutItem{Kind: kind, X: x, Y: y}
	if kind == KindText && raw.Text != nil {
		item.Text = *raw.Text
	}
	return item, nil
}

func layoutCoord(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite")
	}
	v = math.Floor(v)
	if v > coordLimit || v < -coordLimit {
		return 0, fmt.Errorf("%v out of range", v)
	}
	return int(v), nil
}

// ApplyLayout replaces the overlay with items and returns the number of
// elements created. Coordinates are used as given, so elements may lie
// partly or wholly outside the grid. Text labels are normalized and
// default to "Title"; text boxes are 50×10 unless the label or the face
// needs more room.
// An empty item list leaves the overlay untouched and returns 0.
func (c *Canvas) ApplyLayout(items []LayoutItem) int {
	if len(items) == 0 {
		return 0
	}
	c.overlay.Clear()
	for _, it := range items {
		at := image.Pt(it.X, it.Y)
		switch it.Kind {
		case KindSlot:
			c.overlay.AddSlot(at)
		case KindText:
			text := label.Normalize(it.Text)
			if text == "" {
				text = LayoutTextLabel
			}
			w := max(LayoutTextWidth, c.opts.face.Measure(text))
			c.overlay.AddText(at, text, image.Pt(w, LayoutTextHeight))
		}
	}
	c.overlay.ClearSelection()
	c.logger().Debug("layout applied", "elements", c.overlay.Len())
	return c.overlay.Len()
}

// DecodePixelList parses a generated texture: {"pixels": [...]} or a
// bare array of color tokens, optionally inside a markdown code fence.
func DecodePixelList(data []byte) ([]string, error) {
	data = stripFence(data)

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var obj rawPixels
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}
	if obj.Pixels == nil {
		return nil, fmt.Errorf("%w: missing pixels", ErrMalformedLayout)
	}
	return obj.Pixels, nil
}

// ApplyPixelList replaces the grid with the row-major color tokens in
// pixels and commits once. The list is padded with Empty or truncated to
// width*height; unparseable tokens become Empty. An empty list is
// ignored.
func (c *Canvas) ApplyPixelList(pixels []string) bool {
	if len(pixels) == 0 {
		return false
	}
	c.EndStroke()

	n := c.width * c.height
	if len(pixels) != n {
		c.logger().Warn("pixel list resized", "got", len(pixels), "want", n)
	}
	cells := make([]Cell, min(len(pixels), n))
	bad := 0
	for i := range cells {
		cell, err := ParseCell(pixels[i])
		if err != nil {
			bad++
		}
		cells[i] = cell
	}
	if bad > 0 {
		c.logger().Warn("unparseable pixel tokens replaced with transparent", "count", bad)
	}
	c.commit(GridFromCells(c.width, c.height, cells), "pixels")
	return true
}

// stripFence removes a surrounding ``` or ```json fence.
func stripFence(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	data = data[3:]
	if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
		data = data[nl+1:]
	} else {
		data = bytes.TrimPrefix(data, []byte("json"))
	}
	data = bytes.TrimSpace(data)
	data = bytes.TrimSuffix(data, []byte("```"))
	return bytes.TrimSpace(data)
}
