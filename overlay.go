package pixed

import (
	"image"
	"slices"
)

// Overlay is the vector layer: an ordered set of elements keyed by id.
// Insertion order is paint order, so later elements draw on top and win
// hit tests. At most one element is selected.
//
// Operations referencing an unknown id are no-ops reported through their
// boolean result. The zero value is an empty overlay ready to use.
type Overlay struct {
	order    []ElementID
	byID     map[ElementID]Element
	nextID   ElementID
	selected ElementID // 0 means none
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{byID: make(map[ElementID]Element)}
}

func (o *Overlay) newID() ElementID {
	o.nextID++
	return o.nextID
}

func (o *Overlay) insert(e Element) ElementID {
	if o.byID == nil {
		o.byID = make(map[ElementID]Element)
	}
	o.order = append(o.order, e.ID())
	o.byID[e.ID()] = e
	return e.ID()
}

// Add creates an element of the given kind at the given position with
// the kind's defaults and selects it. Text gets a fixed
// DefaultTextWidth×DefaultTextHeight box; Canvas.AddElement widens it to
// the canvas face. Unknown kinds return 0.
func (o *Overlay) Add(kind ElementKind, at image.Point) ElementID {
	var id ElementID
	switch kind {
	case KindSlot:
		id = o.AddSlot(at)
	case KindText:
		id = o.AddText(at, DefaultTextLabel, image.Pt(DefaultTextWidth, DefaultTextHeight))
	default:
		return 0
	}
	return id
}

// AddSlot adds and selects a slot with its top-left corner at at.
func (o *Overlay) AddSlot(at image.Point) ElementID {
	id := o.insert(Slot{id: o.newID(), X: at.X, Y: at.Y})
	o.selected = id
	return id
}

// AddText adds and selects a text label with the given box size.
// Negative box dimensions are treated as zero.
func (o *Overlay) AddText(at image.Point, label string, box image.Point) ElementID {
	id := o.insert(Text{
		id:    o.newID(),
		X:     at.X,
		Y:     at.Y,
		W:     max(box.X, 0),
		H:     max(box.Y, 0),
		Label: label,
	})
	o.selected = id
	return id
}

// AddSlotGrid adds cols×rows slots laid out edge to edge starting at
// origin and returns their ids in row-major order. Selection is left
// unchanged.
func (o *Overlay) AddSlotGrid(origin image.Point, cols, rows int) []ElementID {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	ids := make([]ElementID, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ids = append(ids, o.insert(Slot{
				id: o.newID(),
				X:  origin.X + x*SlotSize,
				Y:  origin.Y + y*SlotSize,
			}))
		}
	}
	return ids
}

// Get returns the element with the given id.
func (o *Overlay) Get(id ElementID) (Element, bool) {
	e, ok := o.byID[id]
	return e, ok
}

// Update applies a partial update. It reports false for an unknown id.
func (o *Overlay) Update(id ElementID, u ElementUpdate) bool {
	e, ok := o.byID[id]
	if !ok {
		return false
	}
	o.byID[id] = e.apply(u)
	return true
}

// Remove deletes an element, clearing the selection if it pointed at it.
func (o *Overlay) Remove(id ElementID) bool {
	if _, ok := o.byID[id]; !ok {
		return false
	}
	delete(o.byID, id)
	o.order = slices.DeleteFunc(o.order, func(v ElementID) bool { return v == id })
	if o.selected == id {
		o.selected = 0
	}
	return true
}

// Clear removes every element and the selection. IDs keep increasing.
func (o *Overlay) Clear() {
	o.order = o.order[:0]
	clear(o.byID)
	o.selected = 0
}

// Len returns the number of elements.
func (o *Overlay) Len() int { return len(o.order) }

// Elements returns the elements in paint order.
func (o *Overlay) Elements() []Element {
	out := make([]Element, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.byID[id])
	}
	return out
}

// HitTest returns the topmost element whose box contains (x, y).
func (o *Overlay) HitTest(x, y int) (ElementID, bool) {
	p := image.Pt(x, y)
	for i := len(o.order) - 1; i >= 0; i-- {
		id := o.order[i]
		if p.In(o.byID[id].Bounds()) {
			return id, true
		}
	}
	return 0, false
}

// Select selects an existing element. Unknown ids leave the selection
// unchanged and report false.
func (o *Overlay) Select(id ElementID) bool {
	if _, ok := o.byID[id]; !ok {
		return false
	}
	o.selected = id
	return true
}

// ClearSelection deselects any element.
func (o *Overlay) ClearSelection() {
	o.selected = 0
}

// Selected returns the selected element id, if any.
func (o *Overlay) Selected() (ElementID, bool) {
	return o.selected, o.selected != 0
}
