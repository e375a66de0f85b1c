package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"FractalExplorer/complexnum"
	"FractalExplorer/fractal"
	"FractalExplorer/misc"
	"FractalExplorer/renderer"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"
)

const (
	settingsFlag   = "settings"
	variantFlag    = "variant"
	methodFlag     = "method"
	juliaFlag      = "julia"
	outFlag        = "out"
	workersFlag    = "workers"
	iterationsFlag = "iterations"
	formatFlag     = "format"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render escape time fractals",
	}

	flags := cmd.PersistentFlags()
	flags.String(settingsFlag, "", "JSON settings file, defaults are used when empty")
	flags.String(variantFlag, "", "fractal variant: mandel, burningship, tricorn, celtic, lambda or phoenix")
	flags.String(methodFlag, "", "value method: escapetime, smoothescapetime or rings")
	flags.String(juliaFlag, "", `render the Julia pane too, seeded with "(re, im)"`)
	flags.String(outFlag, "", "folder the run folder is created in")
	flags.Int(workersFlag, 0, "goroutines per pane, 0 for one per CPU")
	flags.Int(iterationsFlag, 0, "iteration cap, 0 keeps the settings value")
	flags.String(formatFlag, "png", "image format: png, jpg, bmp or tiff")

	cmd.AddCommand(renderCmd(), animateCmd(), orbitCmd())
	return cmd
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the primary pane, and the Julia pane when enabled",
		Args:  cobra.ExactArgs(0),
		RunE:  runRender,
	}
}

func animateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "animate",
		Short: "Render one image per frame of the configured transitions",
		Args:  cobra.ExactArgs(0),
		RunE:  runAnimate,
	}
}

func orbitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orbit x y",
		Short: "Print the orbit of a pixel of the primary pane",
		Args:  cobra.ExactArgs(2),
		RunE:  runOrbit,
	}
}

// loadSettings reads the settings file, if any, and applies the flags over it.
func loadSettings(cmd *cobra.Command) (renderer.Settings, error) {
	flags := cmd.Flags()
	settings := renderer.DefaultSettings()

	// orbit writes no images
	if cmd.Name() != "orbit" {
		format, _ := flags.GetString(formatFlag)
		if err := renderer.CheckFormat(format); err != nil {
			return settings, err
		}
	}

	settingsFile, _ := flags.GetString(settingsFlag)
	if settingsFile != "" {
		var err error
		settings, err = renderer.NewSettings(settingsFile)
		if err != nil {
			return settings, err
		}
	}

	if name, _ := flags.GetString(variantFlag); name != "" {
		variant, err := fractal.ParseVariant(name)
		if err != nil {
			return settings, err
		}
		settings.Variant = variant
	}
	if name, _ := flags.GetString(methodFlag); name != "" {
		method, err := fractal.ParseMethod(name)
		if err != nil {
			return settings, err
		}
		settings.Fractal.Method = method
	}
	if seed, _ := flags.GetString(juliaFlag); seed != "" {
		c, err := complexnum.Parse(seed)
		if err != nil {
			return settings, err
		}
		settings.Julia = renderer.JuliaSettings{Enabled: true, Seed: c}
	}
	if out, _ := flags.GetString(outFlag); out != "" {
		settings.SavePath = out
	}
	if flags.Changed(workersFlag) {
		settings.Workers, _ = flags.GetInt(workersFlag)
	}
	if iterations, _ := flags.GetInt(iterationsFlag); iterations > 0 {
		settings.Fractal.MaxIterations = iterations
	}

	return settings, settings.Verify()
}

// startRun creates the run folder, stores a copy of the settings in it so the
// run can be repeated, and opens the run log.
func startRun(cmd *cobra.Command) (*renderer.Renderer, renderer.Settings, *os.File, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, settings, nil, err
	}

	runDir := settings.RunDir()
	if err = misc.MakeDir(runDir); err != nil {
		return nil, settings, nil, err
	}

	logger := bslogger.NewLogger("Fractal", bslogger.Normal, nil)

	bytes, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, settings, nil, err
	}
	bytesWritten, err := misc.WriteFile(filepath.Join(runDir, "settings.json"), bytes)
	if err != nil || bytesWritten == 0 {
		logger.Warningf("Unable to make a backup copy of the settings: %v", err)
	}

	// Create a log file to record the run
	logFile, err := os.Create(filepath.Join(runDir, "fractal.log"))
	if misc.CheckError(err, logger, misc.Warning) {
		logFile = nil
	}

	r, err := renderer.New(settings, logFile)
	if err != nil {
		closeLog(logFile)
		return nil, settings, nil, err
	}
	return r, settings, logFile, nil
}

func closeLog(logFile *os.File) {
	if logFile != nil {
		_ = logFile.Close()
	}
}

func imagePath(cmd *cobra.Command, settings renderer.Settings, name string) string {
	format, _ := cmd.Flags().GetString(formatFlag)
	return filepath.Join(settings.RunDir(), name+"."+format)
}

func runRender(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	r, settings, logFile, err := startRun(cmd)
	if err != nil {
		return err
	}
	defer closeLog(logFile)

	if err = r.UpdateAll(); err != nil {
		return err
	}

	panes := []renderer.Pane{renderer.PrimaryPane}
	if settings.Julia.Enabled {
		panes = append(panes, renderer.JuliaPane)
	}
	for _, pane := range panes {
		path := imagePath(cmd, settings, pane.String())
		if err = renderer.SaveImage(path, r.Image(pane)); err != nil {
			return err
		}
		cmd.Printf("Saved image to %s\n", path)
	}
	return nil
}

func runAnimate(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	r, settings, logFile, err := startRun(cmd)
	if err != nil {
		return err
	}
	defer closeLog(logFile)

	transitions := settings.Transitions
	if len(transitions) == 0 {
		transitions = []renderer.Transition{{
			StartCenter: settings.Center,
			EndCenter:   settings.Center,
		}}
		if err = transitions[0].Verify(); err != nil {
			return err
		}
	}

	frames := renderer.Frames(transitions)
	for _, frame := range frames {
		if err = cmd.Context().Err(); err != nil {
			return err
		}

		img, frameErr := r.RenderFrame(frame)
		if frameErr != nil {
			return frameErr
		}
		path := imagePath(cmd, settings, strconv.FormatUint(uint64(frame.Number), 10))
		if err = renderer.SaveImage(path, img); err != nil {
			return err
		}
		cmd.Printf("Saved frame %d/%d to %s\n", frame.Number, len(frames), path)
	}
	return nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	cmd.SilenceUsage = true

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	r, err := renderer.New(settings, nil)
	if err != nil {
		return err
	}

	for i, p := range r.Orbit(x, y) {
		cmd.Printf("%d %d %d\n", i, p.X, p.Y)
	}
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
