package fractal

import (
	"image"
)

// InSet is the grid value of a point that did not escape.
const InSet = -1.0

// Grid is a width x height matrix of divergence values stored row by row.
type Grid struct {
	width  int
	height int
	values []float64
}

func NewGrid(width int, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// NewGridFromRows copies rows[y][x] into a new grid. Rows shorter than the
// first one are padded with zeros.
func NewGridFromRows(rows [][]float64) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < g.width && x < len(row); x++ {
			g.values[y*g.width+x] = row[x]
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

func (g *Grid) In(x int, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) At(x int, y int) float64 {
	return g.values[y*g.width+x]
}

func (g *Grid) Set(x int, y int, value float64) {
	g.values[y*g.width+x] = value
}

// Values exposes the backing slice, row by row.
func (g *Grid) Values() []float64 {
	return g.values
}

func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.width, g.height)
	copy(clone.values, g.values)
	return clone
}

// Rows copies the grid out as rows[y][x].
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.height)
	for y := range rows {
		rows[y] = make([]float64, g.width)
		copy(rows[y], g.values[y*g.width:(y+1)*g.width])
	}
	return rows
}
