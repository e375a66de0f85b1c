// Package filter holds post-processing passes over divergence grids.
package filter

import (
	"FractalExplorer/fractal"
)

// Edges marks with 1 every pixel whose value differs from one of its four
// direct neighbours, and leaves the rest at 0. Pixels closer than
// checkRadius to the border are never marked; the margin is at least 1.
func Edges(grid *fractal.Grid, checkRadius int) *fractal.Grid {
	width, height := grid.Width(), grid.Height()
	edges := fractal.NewGrid(width, height)

	margin := checkRadius
	if margin < 1 {
		margin = 1
	}

	for y := margin; y+margin < height; y++ {
		for x := margin; x+margin < width; x++ {
			center := grid.At(x, y)
			if center != grid.At(x, y-1) || center != grid.At(x, y+1) ||
				center != grid.At(x-1, y) || center != grid.At(x+1, y) {
				edges.Set(x, y, 1)
			}
		}
	}

	return edges
}

// DiscSum replaces every pixel with the sum of edges within radius of it,
// clipped to the grid. With skipInSet, pixels whose original value is
// fractal.InSet are left at 0.
func DiscSum(edges *fractal.Grid, original *fractal.Grid, radius int, skipInSet bool) *fractal.Grid {
	width, height := edges.Width(), edges.Height()
	summed := fractal.NewGrid(width, height)
	offsets := disc(radius)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if skipInSet && original.At(x, y) == fractal.InSet {
				continue
			}

			value := 0.0
			for _, o := range offsets {
				nx, ny := x+o[0], y+o[1]
				if edges.In(nx, ny) {
					value += edges.At(nx, ny)
				}
			}
			summed.Set(x, y, value)
		}
	}

	return summed
}

// Rings turns a divergence grid into contour bands: the edges of the grid
// summed over a disc of ringSize. A ringSize under 1 returns the edges.
func Rings(grid *fractal.Grid, ringSize int, checkRadius int, skipInSet bool) *fractal.Grid {
	edges := Edges(grid, checkRadius)
	if ringSize < 1 {
		return edges
	}
	return DiscSum(edges, grid, ringSize, skipInSet)
}

// disc lists the offsets with dx^2+dy^2 <= radius^2.
func disc(radius int) [][2]int {
	var offsets [][2]int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				offsets = append(offsets, [2]int{dx, dy})
			}
		}
	}
	return offsets
}
