package pixed

// DefaultHistoryCapacity is the number of snapshots kept by default.
const DefaultHistoryCapacity = 20

// History is a linear undo stack of grid snapshots held in a fixed-size
// ring. When a commit would exceed the capacity the oldest snapshot is
// evicted and the cursor moves with it.
//
// Invariants: 0 <= Index() < Len() <= Capacity(), and the snapshot at
// the cursor is the displayed grid after every commit, undo and redo.
type History struct {
	ring   []Grid
	start  int // ring position of the oldest snapshot
	n      int // live snapshots
	cursor int // logical position, 0 = oldest
}

// NewHistory creates a history holding initial as its only snapshot.
// A capacity below 1 selects DefaultHistoryCapacity.
func NewHistory(initial Grid, capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	h := &History{ring: make([]Grid, capacity)}
	h.Reset(initial)
	return h
}

// Reset discards every snapshot and starts over from g.
func (h *History) Reset(g Grid) {
	clear(h.ring)
	h.start = 0
	h.ring[0] = g
	h.n = 1
	h.cursor = 0
}

// Capacity returns the maximum number of retained snapshots.
func (h *History) Capacity() int { return len(h.ring) }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return h.n }

// Index returns the cursor position.
func (h *History) Index() int { return h.cursor }

// Current returns the snapshot at the cursor.
func (h *History) Current() Grid { return h.at(h.cursor) }

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool { return h.cursor < h.n-1 }

// Commit appends g after the cursor, dropping any redo snapshots first.
func (h *History) Commit(g Grid) {
	for i := h.cursor + 1; i < h.n; i++ {
		h.ring[h.pos(i)] = Grid{}
	}
	h.n = h.cursor + 1

	if h.n == len(h.ring) {
		h.ring[h.start] = Grid{}
		h.start = (h.start + 1) % len(h.ring)
		h.n--
	}
	h.ring[h.pos(h.n)] = g
	h.n++
	h.cursor = h.n - 1
}

// Undo moves the cursor back one step and returns that snapshot.
// At the oldest snapshot it returns the current grid and false.
func (h *History) Undo() (Grid, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo moves the cursor forward one step and returns that snapshot.
func (h *History) Redo() (Grid, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

func (h *History) pos(i int) int {
	return (h.start + i) % len(h.ring)
}

func (h *History) at(i int) Grid {
	return h.ring[h.pos(i)]
}
