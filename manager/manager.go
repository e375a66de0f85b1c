package manager

import (
	"fmt"
	"image"
	"math"
	"os"
	"runtime"
	"sync"
	"time"

	"FractalExplorer/complexnum"
	"FractalExplorer/fractal"
	"FractalExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultZoom = 1.0
	DefaultN    = 2.0
)

var (
	DefaultCenter   = complexnum.New(-0.5, 0)
	DefaultPhoenixP = complexnum.New(0.25, 0)
)

// Preset is a starting view a Manager can be reset to.
type Preset int

const (
	// HomeView frames the whole Mandelbrot set.
	HomeView Preset = iota
	// OriginView is centered on the origin, which suits Julia sets.
	OriginView
)

func (p Preset) String() string {
	switch p {
	case HomeView:
		return "HomeView"
	case OriginView:
		return "OriginView"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// Manager owns one render surface: its view parameters and the divergence
// grid produced by the last Update.
//
// A Manager is not safe for concurrent use. Mutators must not be called while
// an Update on the same Manager is running. Separate Managers share nothing
// and can be updated at the same time.
type Manager struct {
	logger bslogger.Logger
	mapper fractal.Mapper

	generation task.Generation
	tileSize   int
	workers    int

	zoom     float64
	center   complexnum.Number
	n        float64
	juliaC   complexnum.Number
	phoenixP complexnum.Number
	julia    bool

	screen *fractal.Grid
}

// NewManager creates a width x height surface showing HomeView. logFile may
// be nil to log to stdout only.
func NewManager(name string, width int, height int, logFile *os.File) *Manager {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	m := &Manager{
		logger:     bslogger.NewLogger(name, bslogger.Normal, logFile),
		mapper:     fractal.NewMapper(width, height),
		generation: task.Row,
		workers:    runtime.NumCPU(),
		n:          DefaultN,
		phoenixP:   DefaultPhoenixP,
		screen:     fractal.NewGrid(width, height),
	}
	m.Reset(HomeView)
	return m
}

func (m *Manager) String() string {
	output := "{Manager "
	output += fmt.Sprintf("Size: %dx%d ", m.mapper.Width(), m.mapper.Height())
	output += fmt.Sprintf("Zoom: %g ", m.zoom)
	output += fmt.Sprintf("Center: %s ", m.center)
	output += fmt.Sprintf("N: %g ", m.n)
	output += fmt.Sprintf("Julia: %t ", m.julia)
	output += fmt.Sprintf("JuliaC: %s ", m.juliaC)
	output += fmt.Sprintf("PhoenixP: %s}", m.phoenixP)
	return output
}

func (m *Manager) Width() int  { return m.mapper.Width() }
func (m *Manager) Height() int { return m.mapper.Height() }

// Screen returns the grid computed by the last Update. Every Update builds a
// new grid, so a returned grid is never written to again.
func (m *Manager) Screen() *fractal.Grid {
	return m.screen
}

// Update evaluates every pixel for the named variant.
func (m *Manager) Update(variantName string, engine fractal.Engine) error {
	variant, err := fractal.ParseVariant(variantName)
	if err != nil {
		return err
	}
	return m.Render(variant, engine)
}

// Render evaluates every pixel for variant and replaces the screen. The
// surface is split into tasks per the configured generation and the tasks are
// shared out between the worker goroutines.
func (m *Manager) Render(variant fractal.Variant, engine fractal.Engine) error {
	tasks, err := task.Split(m.screen.Bounds(), m.generation, m.tileSize)
	if err != nil {
		return err
	}

	startTime := time.Now()
	view := m.snapshot()
	screen := fractal.NewGrid(m.mapper.Width(), m.mapper.Height())

	tasksTodo := make(chan task.Task, len(tasks))
	for _, t := range tasks {
		tasksTodo <- t
	}
	close(tasksTodo)

	workerCount := m.workers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}

	reports := make([]report, workerCount)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reports[id] = processTasks(view, engine, variant, screen, tasksTodo)
		}(i)
	}
	wg.Wait()

	m.screen = screen

	for id, r := range reports {
		m.logger.Debugf("Worker %d processed %d tasks (%d pixels) in %s", id, r.tasksCompleted, r.pixelsCompleted, r.elapsedTime)
	}
	m.logger.Debugf("Rendered %s with %d tasks on %d workers in %s", variant, len(tasks), workerCount, time.Since(startTime))

	return nil
}

// SetGeneration picks how Render splits the surface. tileSize is only used by
// task.Grid, 0 selects task.DefaultTileSize.
func (m *Manager) SetGeneration(generation task.Generation, tileSize int) error {
	if generation < task.Row || generation > task.Grid {
		return fmt.Errorf("%w: %d", task.ErrUnknownGeneration, int(generation))
	}
	m.generation = generation
	m.tileSize = tileSize
	return nil
}

func (m *Manager) Generation() task.Generation {
	return m.generation
}

// SetWorkers sets how many goroutines Render uses. Values under 1 select one
// per CPU.
func (m *Manager) SetWorkers(workers int) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	m.workers = workers
}

func (m *Manager) Workers() int {
	return m.workers
}

func (m *Manager) Zoom() float64 {
	return m.zoom
}

// SetZoom ignores values that are not positive and finite.
func (m *Manager) SetZoom(zoom float64) {
	if !validZoom(zoom) {
		m.logger.Warningf("Ignoring zoom %g", zoom)
		return
	}
	m.zoom = zoom
}

// ChangeZoom multiplies the zoom by factor.
func (m *Manager) ChangeZoom(factor float64) {
	m.SetZoom(m.zoom * factor)
}

func (m *Manager) N() float64 {
	return m.n
}

// SetN sets the exponent. It is not range checked, see fractal.Engine.Escape.
func (m *Manager) SetN(n float64) {
	m.n = n
}

// ChangeN adds delta to the exponent.
func (m *Manager) ChangeN(delta float64) {
	m.n += delta
}

func (m *Manager) Center() complexnum.Number {
	return m.center
}

func (m *Manager) SetCenter(center complexnum.Number) {
	m.center = center
}

// Auxiliary is the constant of a Julia style view.
func (m *Manager) Auxiliary() complexnum.Number {
	return m.juliaC
}

func (m *Manager) SetAuxiliary(c complexnum.Number) {
	m.juliaC = c
}

// PhoenixP is the coefficient of the previous iterate in fractal.Phoenix.
func (m *Manager) PhoenixP() complexnum.Number {
	return m.phoenixP
}

func (m *Manager) SetPhoenixP(p complexnum.Number) {
	m.phoenixP = p
}

// Julia reports whether the iterate starts at the pixel with the auxiliary
// constant fixed, rather than at the origin with the pixel as the constant.
func (m *Manager) Julia() bool {
	return m.julia
}

func (m *Manager) SetJulia(julia bool) {
	m.julia = julia
}

// Reset moves the view to preset. The exponent and constants are kept.
func (m *Manager) Reset(preset Preset) {
	switch preset {
	case OriginView:
		m.zoom = 0.75
		m.center = complexnum.New(0, 0)
	default:
		m.zoom = DefaultZoom
		m.center = DefaultCenter
	}
}

// PointAt returns the complex point under pixel (x, y) of the current view.
func (m *Manager) PointAt(x int, y int) complexnum.Number {
	return m.mapper.PixelToComplex(x, y, m.zoom, m.center)
}

// ZoomAt recenters the view on pixel (x, y) and multiplies the zoom by
// factor. A factor under 1 zooms out.
func (m *Manager) ZoomAt(x int, y int, factor float64) {
	if !validZoom(m.zoom * factor) {
		m.logger.Warningf("Ignoring zoom factor %g", factor)
		return
	}
	m.center = m.PointAt(x, y)
	m.zoom *= factor
}

// Orbit traces the iterates of pixel (x, y) and returns where they fall on
// the surface. Points may lie outside the surface.
func (m *Manager) Orbit(variant fractal.Variant, engine fractal.Engine, x int, y int) []image.Point {
	view := m.snapshot()
	z, c := view.start(view.mapper.PixelToComplex(x, y, view.zoom, view.center))

	orbit := engine.Orbit(variant, z, c, view.n, view.phoenixP)
	points := make([]image.Point, len(orbit))
	for i, point := range orbit {
		px, py := view.mapper.ComplexToPixel(point, view.zoom, view.center)
		if variant.FlipsRows() {
			py = view.mapper.Height() - 1 - py
		}
		points[i] = image.Pt(px, py)
	}
	return points
}

func (m *Manager) snapshot() view {
	return view{
		mapper:   m.mapper,
		zoom:     m.zoom,
		center:   m.center,
		n:        m.n,
		juliaC:   m.juliaC,
		phoenixP: m.phoenixP,
		julia:    m.julia,
	}
}

func validZoom(zoom float64) bool {
	return zoom > 0 && !math.IsInf(zoom, 1)
}
