package renderer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"FractalExplorer/complexnum"
	"FractalExplorer/fractal"
	"FractalExplorer/manager"
	"FractalExplorer/misc"
	"FractalExplorer/palette"
	"FractalExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultWidth        = 1280
	DefaultHeight       = 720
	DefaultRingSize     = 2
	DefaultEscapeColor  = "#000000"
	DefaultRunDirPrefix = "run_"
)

type JuliaSettings struct {
	// Enabled renders the Julia pane next to the primary one.
	Enabled bool
	Seed    complexnum.Number
}

// RingSettings tune the rings color method.
type RingSettings struct {
	Size        int
	CheckRadius int
	// KeepInSet also smooths pixels that are in the set.
	KeepInSet bool
}

type Settings struct {
	logger bslogger.Logger

	Width         int
	Height        int
	SuperSampling int
	Variant       fractal.Variant
	Julia         JuliaSettings
	Zoom          float64
	Center        complexnum.Number
	N             float64
	PhoenixP      complexnum.Number
	Generation    task.Generation
	TileSize      int
	Workers       int
	Fractal       fractal.Settings
	Palette       palette.Settings
	Rings         RingSettings
	EscapeColor   string
	RunName       string
	SavePath      string
	Transitions   []Transition
}

// DefaultSettings are the values a settings file is decoded over, so missing
// keys keep these.
func DefaultSettings() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		SuperSampling: 1,
		Variant:       fractal.Mandel,
		Julia: JuliaSettings{
			Seed: complexnum.New(-0.8, 0.156),
		},
		Zoom:        manager.DefaultZoom,
		Center:      manager.DefaultCenter,
		N:           manager.DefaultN,
		PhoenixP:    manager.DefaultPhoenixP,
		Generation:  task.Row,
		Fractal:     fractal.DefaultSettings(),
		Rings:       RingSettings{Size: DefaultRingSize, CheckRadius: 1},
		EscapeColor: DefaultEscapeColor,
	}
}

// NewSettings reads and verifies a JSON settings file.
func NewSettings(settingsFile string) (Settings, error) {
	s := DefaultSettings()

	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to decode %s - %w", settingsFile, err)
	}
	if err = s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "{RendererSettings "
	output += fmt.Sprintf("Size: %dx%d ", s.Width, s.Height)
	output += fmt.Sprintf("SuperSampling: %d ", s.SuperSampling)
	output += fmt.Sprintf("Variant: %s ", s.Variant)
	output += fmt.Sprintf("Julia: %t %s ", s.Julia.Enabled, s.Julia.Seed)
	output += fmt.Sprintf("Zoom: %g ", s.Zoom)
	output += fmt.Sprintf("Center: %s ", s.Center)
	output += fmt.Sprintf("N: %g ", s.N)
	output += fmt.Sprintf("Generation: %s ", s.Generation)
	output += fmt.Sprintf("Workers: %d ", s.Workers)
	output += fmt.Sprintf("Fractal: %s ", s.Fractal.String())
	output += fmt.Sprintf("Palette: %s ", s.Palette.String())
	output += fmt.Sprintf("Run: %s ", s.RunDir())
	output += fmt.Sprintf("Transitions: %d}", len(s.Transitions))
	return output
}

// Verify fills in defaults and reports settings that cannot be repaired.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RendererSettings", bslogger.Normal, nil)

	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.Variant < fractal.Mandel || s.Variant > fractal.Phoenix {
		return fmt.Errorf("%w: %d", fractal.ErrUnknownVariant, int(s.Variant))
	}
	if s.Zoom <= 0 || math.IsNaN(s.Zoom) || math.IsInf(s.Zoom, 0) {
		s.logger.Warningf("Zoom %g is not usable, using %g", s.Zoom, manager.DefaultZoom)
		s.Zoom = manager.DefaultZoom
	}
	if s.N <= 0 {
		// Allowed on purpose, the iterates are just not well defined
		s.logger.Warningf("Exponent %g is not positive", s.N)
	}
	if s.Generation < task.Row || s.Generation > task.Grid {
		s.logger.Warningf("Unknown generation %d, using %s", int(s.Generation), task.Row)
		s.Generation = task.Row
	}
	if s.TileSize < 0 {
		s.TileSize = 0
	}
	// Workers < 1 lets the managers use one per CPU
	if s.Workers < 0 {
		s.Workers = 0
	}
	if err := s.Fractal.Verify(); err != nil {
		return err
	}
	if err := s.Palette.Verify(); err != nil {
		return err
	}
	if s.Rings.Size < 0 {
		s.Rings.Size = 0
	}
	if s.Rings.CheckRadius < 1 {
		s.Rings.CheckRadius = 1
	}
	if s.EscapeColor == "" {
		s.EscapeColor = DefaultEscapeColor
	}
	if _, err := palette.ParseHex(s.EscapeColor); err != nil {
		return err
	}
	if s.RunName == "" {
		s.RunName = DefaultRunDirPrefix + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}

	// Verify each of the transition settings objects
	for i := 0; i < len(s.Transitions); i++ {
		misc.CheckError(s.Transitions[i].Verify(), s.logger, misc.Warning)
	}

	return nil
}

// RunDir is the folder the images and logs of this run are written to.
func (s *Settings) RunDir() string {
	return filepath.Join(s.SavePath, s.RunName)
}
