package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"FractalExplorer/fractal"
	"FractalExplorer/renderer"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSettings(t *testing.T, dir string, contents string) string {
	t.Helper()
	name := filepath.Join(dir, "input.json")
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRenderWritesImages(t *testing.T) {
	dir := t.TempDir()
	settings := writeSettings(t, dir, `{"Width": 24, "Height": 16, "RunName": "run", "Fractal": {"MaxIterations": 40}}`)

	_, err := run(t, "render", "--settings", settings, "--out", dir, "--julia", "(-0.4, 0.6)", "--variant", "celtic")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, name := range []string{"Primary.png", "Julia.png", "settings.json", "fractal.log"} {
		if _, err := os.Stat(filepath.Join(dir, "run", name)); err != nil {
			t.Errorf("%s was not written: %v", name, err)
		}
	}

	copied, err := os.ReadFile(filepath.Join(dir, "run", "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(copied), `"celtic"`) {
		t.Errorf("settings copy does not record the variant flag: %s", copied)
	}
}

func TestAnimateWritesFrames(t *testing.T) {
	dir := t.TempDir()
	settings := writeSettings(t, dir, `{
		"Width": 16, "Height": 12, "RunName": "anim",
		"Fractal": {"MaxIterations": 30},
		"Transitions": [{"MagnificationStart": 1, "MagnificationEnd": 4, "MagnificationStep": 2, "EndCenter": "(-0.75, 0.1)"}]
	}`)

	if _, err := run(t, "animate", "--settings", settings, "--out", dir, "--format", "bmp"); err != nil {
		t.Fatalf("animate error: %v", err)
	}
	for _, name := range []string{"1.bmp", "2.bmp"} {
		if _, err := os.Stat(filepath.Join(dir, "anim", name)); err != nil {
			t.Errorf("%s was not written: %v", name, err)
		}
	}
}

func TestOrbitPrintsPoints(t *testing.T) {
	out, err := run(t, "orbit", "3", "4", "--iterations", "20")
	if err != nil {
		t.Fatalf("orbit error: %v", err)
	}
	if !strings.HasPrefix(out, "0 ") {
		t.Errorf("orbit output = %q", out)
	}
}

func TestBadFlags(t *testing.T) {
	if _, err := run(t, "orbit", "3", "4", "--variant", "mandelbulb"); !errors.Is(err, fractal.ErrUnknownVariant) {
		t.Errorf("orbit --variant mandelbulb error = %v, want ErrUnknownVariant", err)
	}
	if _, err := run(t, "orbit", "x", "4"); err == nil {
		t.Errorf("orbit x 4 succeeded")
	}
	if _, err := run(t, "orbit", "1"); err == nil {
		t.Errorf("orbit with one argument succeeded")
	}
}

func TestUnknownFormatFailsBeforeRendering(t *testing.T) {
	dir := t.TempDir()
	settings := writeSettings(t, dir, `{"Width": 8, "Height": 8, "RunName": "run"}`)

	_, err := run(t, "render", "--settings", settings, "--out", dir, "--format", "gfi")
	if !errors.Is(err, renderer.ErrUnknownFormat) {
		t.Fatalf("render --format gfi error = %v, want ErrUnknownFormat", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "run")); !os.IsNotExist(statErr) {
		t.Errorf("run directory exists after a bad format: %v", statErr)
	}
}
