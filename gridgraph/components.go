package gridgraph

// Islands finds all maximal 4-connected regions of land cells.
// Components are discovered in row-major order of their first cell;
// each component lists its cells in BFS order from that cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Islands() [][]Position {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Position

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Land || seen[g.index(x, y)] {
				continue
			}
			// BFS to collect component
			queue := []Position{{X: x, Y: y}}
			seen[g.index(x, y)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range g.Neighbors4(queue[qi]) {
					vi := g.index(v.X, v.Y)
					if seen[vi] || g.cells[v.Y][v.X] != Land {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// IslandLabels returns a map from every land cell to the index of its
// component in Islands().
func (g *Grid) IslandLabels() map[Position]int {
	labels := make(map[Position]int)
	for i, comp := range g.Islands() {
		for _, p := range comp {
			labels[p] = i
		}
	}

	return labels
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
