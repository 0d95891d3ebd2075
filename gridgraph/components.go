package gridgraph

// Regions finds all 4-connected regions of walkable cells.
// Returns a slice of regions; each region lists its cells in BFS order
// from its first cell in row-major order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]Cell

	for i0, t := range g.cells {
		if !t.Walkable() || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, h := range Headings {
				v, ok := g.Neighbor(u, h.Delta())
				if !ok {
					continue
				}
				vi := g.index(v)
				if !g.cells[vi].Walkable() || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether a walkable path joins a and b, ignoring any
// cost model. Walls and out-of-bounds cells are connected to nothing.
// Complexity: O(R·C) worst case; stops as soon as b is reached.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	queue := []int{g.index(a)}
	seen[queue[0]] = true
	target := g.index(b)

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, h := range Headings {
			v, ok := g.Neighbor(u, h.Delta())
			if !ok {
				continue
			}
			vi := g.index(v)
			if !g.cells[vi].Walkable() || seen[vi] {
				continue
			}
			if vi == target {
				return true
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false
}
