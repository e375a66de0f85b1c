package renderer

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"
	"time"

	"FractalExplorer/complexnum"
	"FractalExplorer/filter"
	"FractalExplorer/fractal"
	"FractalExplorer/manager"
	"FractalExplorer/palette"

	"github.com/BrugadaSyndrome/bslogger"
	xdraw "golang.org/x/image/draw"
)

// Pane picks one of the two surfaces of a Renderer.
type Pane int

const (
	// PrimaryPane shows the variant with the pixel as the constant.
	PrimaryPane Pane = iota
	// JuliaPane shows the Julia set of the seed picked on the primary pane.
	JuliaPane
)

func (p Pane) String() string {
	switch p {
	case PrimaryPane:
		return "Primary"
	case JuliaPane:
		return "Julia"
	default:
		return fmt.Sprintf("Pane(%d)", int(p))
	}
}

// Renderer ties a primary and a Julia pane to one engine configuration and
// one palette, and turns their grids into images.
//
// Like manager.Manager it is not safe for concurrent use: configuration
// calls must not overlap an Update.
type Renderer struct {
	logger   bslogger.Logger
	settings Settings

	fractal fractal.Settings
	variant fractal.Variant

	primary *manager.Manager
	julia   *manager.Manager

	gradient    *palette.Gradient
	paletteSize int
	scrollDelta int
	escapeColor color.RGBA
}

// New builds a Renderer from verified settings. logFile may be nil.
func New(settings Settings, logFile *os.File) (*Renderer, error) {
	escapeColor, err := palette.ParseHex(settings.EscapeColor)
	if err != nil {
		return nil, err
	}
	stops, err := settings.Palette.Resolve()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		logger:      bslogger.NewLogger("Renderer", bslogger.Normal, logFile),
		settings:    settings,
		fractal:     settings.Fractal,
		variant:     settings.Variant,
		gradient:    &palette.Gradient{},
		escapeColor: escapeColor,
	}
	if err = r.gradient.SetColors(stops.Colors, stops.Stops); err != nil {
		return nil, err
	}

	width := settings.Width * settings.SuperSampling
	height := settings.Height * settings.SuperSampling

	r.primary = manager.NewManager("PrimaryManager", width, height, logFile)
	r.primary.SetZoom(settings.Zoom)
	r.primary.SetCenter(settings.Center)

	r.julia = manager.NewManager("JuliaManager", width, height, logFile)
	r.julia.SetJulia(true)
	r.julia.SetAuxiliary(settings.Julia.Seed)
	r.julia.Reset(manager.OriginView)

	for _, m := range []*manager.Manager{r.primary, r.julia} {
		m.SetN(settings.N)
		m.SetPhoenixP(settings.PhoenixP)
		m.SetWorkers(settings.Workers)
		if err = m.SetGeneration(settings.Generation, settings.TileSize); err != nil {
			return nil, err
		}
	}

	r.scrollDelta, r.paletteSize = r.fractal.Method.Defaults()
	if settings.Palette.Size > 0 {
		r.paletteSize = settings.Palette.Size
	}
	if err = r.gradient.GeneratePalette(r.paletteSize); err != nil {
		return nil, err
	}

	r.logger.Infof("Renderer ready: %dx%d %s %s, palette of %d", settings.Width, settings.Height, r.variant, r.fractal.Method, r.gradient.Len())
	return r, nil
}

func (r *Renderer) Manager(pane Pane) *manager.Manager {
	if pane == JuliaPane {
		return r.julia
	}
	return r.primary
}

func (r *Renderer) Variant() fractal.Variant {
	return r.variant
}

// SetVariant selects the variant by name for the following updates.
func (r *Renderer) SetVariant(name string) error {
	variant, err := fractal.ParseVariant(name)
	if err != nil {
		return err
	}
	r.variant = variant
	return nil
}

func (r *Renderer) Method() fractal.Method {
	return r.fractal.Method
}

// SetMethod switches the value method. Its value range differs, so the
// palette size and scroll sensitivity are reset to the method's defaults and
// the palette is rebuilt.
func (r *Renderer) SetMethod(method fractal.Method) error {
	if method < fractal.EscapeTime || method > fractal.Rings {
		return fmt.Errorf("%w: %d", fractal.ErrUnknownMethod, int(method))
	}
	r.fractal.Method = method
	r.scrollDelta, r.paletteSize = method.Defaults()
	r.logger.Infof("Method %s: palette size %d, scroll delta %d", method, r.paletteSize, r.scrollDelta)
	return r.gradient.GeneratePalette(r.paletteSize)
}

func (r *Renderer) MaxIterations() int {
	return r.fractal.MaxIterations
}

// SetMaxIterations takes effect on the next Update. Non-positive values are
// rejected and the current cap is kept.
func (r *Renderer) SetMaxIterations(maxIterations int) error {
	if err := fractal.CheckMaxIterations(maxIterations); err != nil {
		r.logger.Warningf("Keeping max iterations at %d: %v", r.fractal.MaxIterations, err)
		return err
	}
	r.fractal.MaxIterations = maxIterations
	return nil
}

func (r *Renderer) Epsilon() float64 {
	return r.fractal.Epsilon
}

// SetEpsilon takes effect on the next Update. Values that are not positive
// and finite are rejected and the current epsilon is kept.
func (r *Renderer) SetEpsilon(epsilon float64) error {
	if err := fractal.CheckEpsilon(epsilon); err != nil {
		r.logger.Warningf("Keeping epsilon at %g: %v", r.fractal.Epsilon, err)
		return err
	}
	r.fractal.Epsilon = epsilon
	return nil
}

// Engine snapshots the current engine settings.
func (r *Renderer) Engine() fractal.Engine {
	return fractal.NewEngine(r.fractal)
}

func (r *Renderer) PaletteSize() int {
	return r.paletteSize
}

func (r *Renderer) ScrollDelta() int {
	return r.scrollDelta
}

// Gradient exposes the palette, for example to set other colors.
func (r *Renderer) Gradient() *palette.Gradient {
	return r.gradient
}

// SetPaletteSize rebuilds the palette with size+1 colors.
func (r *Renderer) SetPaletteSize(size int) error {
	r.paletteSize = size
	return r.gradient.GeneratePalette(size)
}

// ScrollPalette grows the palette by steps times the scroll delta, shrinking
// it for negative steps. The size never drops under 1.
func (r *Renderer) ScrollPalette(steps int) error {
	size := r.paletteSize + steps*r.scrollDelta
	if size < 1 {
		size = 1
	}
	return r.SetPaletteSize(size)
}

// Update recomputes the grid of pane with a fresh engine snapshot.
func (r *Renderer) Update(pane Pane) error {
	startTime := time.Now()
	err := r.Manager(pane).Render(r.variant, r.Engine())
	if err != nil {
		return err
	}
	r.logger.Debugf("Updated %s pane in %s", pane, time.Since(startTime))
	return nil
}

// UpdateAll recomputes the primary pane, and the Julia pane when it is
// enabled, at the same time.
func (r *Renderer) UpdateAll() error {
	panes := []Pane{PrimaryPane}
	if r.settings.Julia.Enabled {
		panes = append(panes, JuliaPane)
	}

	engine := r.Engine()
	errs := make([]error, len(panes))
	var wg sync.WaitGroup
	for i, pane := range panes {
		i, pane := i, pane
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = r.Manager(pane).Render(r.variant, engine)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Values returns the grid of pane as it is colored: after the rings filter
// when that is the method.
func (r *Renderer) Values(pane Pane) *fractal.Grid {
	screen := r.Manager(pane).Screen()
	if r.fractal.Method != fractal.Rings {
		return screen
	}
	rings := r.settings.Rings
	return filter.Rings(screen, rings.Size, rings.CheckRadius, !rings.KeepInSet)
}

// Image colors the last grid of pane. Pixels in the set take the escape
// color, the rest go through the palette. A super sampled grid is scaled
// down to the output size.
func (r *Renderer) Image(pane Pane) *image.RGBA {
	screen := r.Manager(pane).Screen()
	values := r.Values(pane)

	img := image.NewRGBA(screen.Bounds())
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			// The raw grid decides membership, the filtered one the color
			if r.fractal.Method != fractal.Rings && screen.At(x, y) == fractal.InSet {
				img.SetRGBA(x, y, r.escapeColor)
				continue
			}
			img.SetRGBA(x, y, r.gradient.Color(values.At(x, y)))
		}
	}

	if r.settings.SuperSampling <= 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, r.settings.Width, r.settings.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

// pixel converts output coordinates of the primary pane to grid coordinates.
func (r *Renderer) pixel(x int, y int) (int, int) {
	ss := r.settings.SuperSampling
	x, y = x*ss+ss/2, y*ss+ss/2
	if r.variant.FlipsRows() {
		y = r.primary.Height() - 1 - y
	}
	return x, y
}

// PickJulia makes the point under output pixel (x, y) of the primary pane
// the seed of the Julia pane.
func (r *Renderer) PickJulia(x int, y int) complexnum.Number {
	gx, gy := r.pixel(x, y)
	seed := r.primary.PointAt(gx, gy)
	r.julia.SetAuxiliary(seed)
	r.logger.Infof("Julia seed %s", seed)
	return seed
}

// Orbit traces the orbit of output pixel (x, y) on the primary pane in output
// coordinates.
func (r *Renderer) Orbit(x int, y int) []image.Point {
	gx, gy := r.pixel(x, y)
	points := r.primary.Orbit(r.variant, r.Engine(), gx, gy)

	for i := range points {
		points[i] = r.outputPoint(points[i])
	}
	return points
}

// outputPoint maps a grid point to the supersampled output pixel holding it.
func (r *Renderer) outputPoint(p image.Point) image.Point {
	ss := r.settings.SuperSampling
	return image.Pt(floorDiv(p.X, ss), floorDiv(p.Y, ss))
}

// floorDiv rounds towards negative infinity so points left of or above the
// surface stay off it.
func floorDiv(a int, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// RenderFrame moves the primary pane to frame and renders it.
func (r *Renderer) RenderFrame(frame Frame) (*image.RGBA, error) {
	r.primary.SetZoom(frame.Zoom)
	r.primary.SetCenter(frame.Center)
	if err := r.Update(PrimaryPane); err != nil {
		return nil, err
	}
	return r.Image(PrimaryPane), nil
}
