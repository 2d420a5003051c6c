package gridgraph

// ConnectedComponents finds all contiguous regions of open cells according to
// gg.Conn connectivity. Each component is a slice of row-major cell indices in
// BFS order; components are ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()

	return comps
}

// Reachable reports whether a path of open cells joins a and b.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	if !gg.Open(a.X, a.Y) || !gg.Open(b.X, b.Y) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label assigns every open cell its component number (walls get -1).
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.Open(x, y) || labels[i0] >= 0 {
				continue
			}
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Open(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return labels, comps
}
