package pixed

// FloodFill replaces the 4-connected region containing start with c.
//
// The region is every cell reachable from start through up/down/left/right
// steps whose original color equals the color at start. Diagonal
// neighbors are never joined. If start is out of range, or the region
// already has color c, g is returned unchanged and callers should not
// commit.
//
// The work list is a stack; traversal order only affects visitation
// order, never the set of filled cells.
func FloodFill(g Grid, start int, c Cell) Grid {
	if start < 0 || start >= g.Len() {
		return g
	}
	target := g.cells[start]
	if target == c {
		return g
	}

	out := g.clone()
	w, h := g.width, g.height
	visited := make([]bool, len(g.cells))
	visited[start] = true
	stack := []int{start}

	push := func(i int) {
		if !visited[i] && g.cells[i] == target {
			visited[i] = true
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.cells[i] = c

		x, y := i%w, i/w
		if x+1 < w {
			push(i + 1)
		}
		if x > 0 {
			push(i - 1)
		}
		if y+1 < h {
			push(i + w)
		}
		if y > 0 {
			push(i - w)
		}
	}
	return out
}
