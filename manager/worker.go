package manager

import (
	"time"

	"FractalExplorer/complexnum"
	"FractalExplorer/fractal"
	"FractalExplorer/task"
)

// view is the copy of the view parameters every worker of one Render reads.
type view struct {
	mapper   fractal.Mapper
	zoom     float64
	center   complexnum.Number
	n        float64
	juliaC   complexnum.Number
	phoenixP complexnum.Number
	julia    bool
}

// start picks the first iterate and the constant for the point under a pixel.
func (v view) start(point complexnum.Number) (z complexnum.Number, c complexnum.Number) {
	if v.julia {
		return point, v.juliaC
	}
	return complexnum.Number{}, point
}

type report struct {
	tasksCompleted  int
	pixelsCompleted int
	elapsedTime     time.Duration
}

// processTasks drains tasksTodo, writing each pixel's value into screen.
// Tasks cover disjoint regions, so workers never write the same cell.
func processTasks(v view, engine fractal.Engine, variant fractal.Variant, screen *fractal.Grid, tasksTodo <-chan task.Task) report {
	var r report
	startTime := time.Now()
	height := v.mapper.Height()

	for taskTodo := range tasksTodo {
		region := taskTodo.Region
		for y := region.Min.Y; y < region.Max.Y; y++ {
			row := y
			if variant.FlipsRows() {
				row = height - 1 - y
			}
			for x := region.Min.X; x < region.Max.X; x++ {
				z, c := v.start(v.mapper.PixelToComplex(x, y, v.zoom, v.center))
				screen.Set(x, row, engine.Value(variant, z, c, v.n, v.phoenixP))
			}
		}
		r.tasksCompleted++
		r.pixelsCompleted += taskTodo.PixelCount()
	}

	r.elapsedTime = time.Since(startTime)
	return r
}
