package task

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

const (
	Row Generation = iota
	Column
	Image
	Grid
)

// DefaultTileSize is the edge length of a Grid tile when none is given.
const DefaultTileSize = 64

var ErrUnknownGeneration = errors.New("unknown task generation")

var generationNames = []string{"Row", "Column", "Image", "Grid"}

// Generation is how a surface is cut into tasks for the workers.
type Generation int

func (g Generation) String() string {
	if g < Row || g > Grid {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return generationNames[g]
}

func ParseGeneration(name string) (Generation, error) {
	for i, n := range generationNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Generation(i), nil
		}
	}
	return Row, fmt.Errorf("%w: %q", ErrUnknownGeneration, name)
}

func (g Generation) MarshalText() ([]byte, error) {
	if g < Row || g > Grid {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeneration, int(g))
	}
	return []byte(g.String()), nil
}

func (g *Generation) UnmarshalText(text []byte) error {
	parsed, err := ParseGeneration(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Task is one rectangle of the surface handed to a worker.
type Task struct {
	ID     uint
	Region image.Rectangle
}

func NewTask(id uint, region image.Rectangle) Task {
	return Task{
		ID:     id,
		Region: region,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Region: %v ", t.Region)
	output += fmt.Sprintf("Pixel Count: %d}", t.PixelCount())
	return output
}

func (t *Task) PixelCount() int {
	return t.Region.Dx() * t.Region.Dy()
}

// Split cuts bounds into tasks. Every pixel of bounds lands in exactly one
// task. tileSize is only read by Grid and falls back to DefaultTileSize.
func Split(bounds image.Rectangle, generation Generation, tileSize int) ([]Task, error) {
	var regions []image.Rectangle

	switch generation {
	case Row:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			regions = append(regions, image.Rect(bounds.Min.X, y, bounds.Max.X, y+1))
		}
	case Column:
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			regions = append(regions, image.Rect(x, bounds.Min.Y, x+1, bounds.Max.Y))
		}
	case Image:
		if !bounds.Empty() {
			regions = append(regions, bounds)
		}
	case Grid:
		if tileSize <= 0 {
			tileSize = DefaultTileSize
		}
		regions = splitTiles(bounds, tileSize, tileSize)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeneration, int(generation))
	}

	tasks := make([]Task, len(regions))
	for i, region := range regions {
		tasks[i] = NewTask(uint(i), region)
	}
	return tasks, nil
}

// splitTiles cuts r into tileW x tileH tiles. Tiles on the right and bottom
// edges are smaller when r does not divide evenly.
func splitTiles(r image.Rectangle, tileW int, tileH int) []image.Rectangle {
	var tiles []image.Rectangle

	for oy := r.Min.Y; oy < r.Max.Y; oy += tileH {
		maxY := oy + tileH
		if maxY > r.Max.Y {
			maxY = r.Max.Y
		}
		for ox := r.Min.X; ox < r.Max.X; ox += tileW {
			maxX := ox + tileW
			if maxX > r.Max.X {
				maxX = r.Max.X
			}
			tiles = append(tiles, image.Rect(ox, oy, maxX, maxY))
		}
	}

	return tiles
}
