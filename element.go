package pixed

import "image"

// ElementID identifies an overlay element. IDs are handed out in
// increasing order and never reused by the same overlay.
type ElementID uint64

// ElementKind names the variant of an Element.
type ElementKind uint8

const (
	// KindSlot is an 18×18 inventory slot.
	KindSlot ElementKind = iota + 1
	// KindText is a text label.
	KindText
)

func (k ElementKind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseElementKind maps "slot" and "text" to their kinds.
func ParseElementKind(s string) (ElementKind, bool) {
	switch s {
	case "slot":
		return KindSlot, true
	case "text":
		return KindText, true
	default:
		return 0, false
	}
}

// Slot geometry and colors.
const SlotSize = 18

var (
	SlotFill      = RGB(0x8b, 0x8b, 0x8b)
	SlotShadow    = RGB(0x37, 0x37, 0x37)
	SlotHighlight = RGB(0xff, 0xff, 0xff)
)

// Text defaults.
const (
	DefaultTextWidth  = 60
	DefaultTextHeight = 10
	DefaultTextLabel  = "Inventory"
)

// TextColor is the color labels are drawn in.
var TextColor = RGB(0x40, 0x40, 0x40)

// Element is a positioned overlay item. The concrete type is either
// Slot or Text; the set of variants is closed.
type Element interface {
	ID() ElementID
	Kind() ElementKind
	// Bounds is the half-open box [X, X+W) × [Y, Y+H) in grid space.
	Bounds() image.Rectangle
	// Position returns the top-left corner.
	Position() image.Point

	apply(u ElementUpdate) Element
}

// Slot is a fixed-size 18×18 beveled inventory slot.
type Slot struct {
	id   ElementID
	X, Y int
}

func (s Slot) ID() ElementID           { return s.id }
func (s Slot) Kind() ElementKind       { return KindSlot }
func (s Slot) Position() image.Point   { return image.Pt(s.X, s.Y) }
func (s Slot) Bounds() image.Rectangle { return image.Rect(s.X, s.Y, s.X+SlotSize, s.Y+SlotSize) }

func (s Slot) apply(u ElementUpdate) Element {
	if u.X != nil {
		s.X = *u.X
	}
	if u.Y != nil {
		s.Y = *u.Y
	}
	return s
}

// Text is a label with a caller-supplied box used for hit testing and
// selection outlines.
type Text struct {
	id    ElementID
	X, Y  int
	W, H  int
	Label string
}

func (t Text) ID() ElementID         { return t.id }
func (t Text) Kind() ElementKind     { return KindText }
func (t Text) Position() image.Point { return image.Pt(t.X, t.Y) }
func (t Text) Bounds() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+max(t.W, 0), t.Y+max(t.H, 0))
}

func (t Text) apply(u ElementUpdate) Element {
	if u.X != nil {
		t.X = *u.X
	}
	if u.Y != nil {
		t.Y = *u.Y
	}
	if u.W != nil && *u.W >= 0 {
		t.W = *u.W
	}
	if u.H != nil && *u.H >= 0 {
		t.H = *u.H
	}
	if u.Label != nil {
		t.Label = *u.Label
	}
	return t
}

// ElementUpdate is a partial update; nil fields are left alone. Fields
// that do not apply to the element's kind (a Label or size on a Slot)
// are ignored.
type ElementUpdate struct {
	X, Y  *int
	W, H  *int
	Label *string
}

// MoveTo returns u with the position fields set.
func (u ElementUpdate) MoveTo(x, y int) ElementUpdate {
	u.X, u.Y = &x, &y
	return u
}

// Resize returns u with the size fields set.
func (u ElementUpdate) Resize(w, h int) ElementUpdate {
	u.W, u.H = &w, &h
	return u
}

// Relabel returns u with the label set.
func (u ElementUpdate) Relabel(label string) ElementUpdate {
	u.Label = &label
	return u
}
