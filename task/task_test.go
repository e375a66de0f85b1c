package task

import (
	"encoding/json"
	"errors"
	"image"
	"testing"
)

func TestSplitCoversEveryPixelOnce(t *testing.T) {
	bounds := image.Rect(0, 0, 37, 23)

	for _, generation := range []Generation{Row, Column, Image, Grid} {
		for _, tileSize := range []int{0, 5, 16, 100} {
			tasks, err := Split(bounds, generation, tileSize)
			if err != nil {
				t.Fatalf("Split(%s) error: %v", generation, err)
			}

			seen := make(map[image.Point]int)
			for _, task := range tasks {
				if !task.Region.In(bounds) {
					t.Errorf("Split(%s): %v is outside %v", generation, task.Region, bounds)
				}
				for y := task.Region.Min.Y; y < task.Region.Max.Y; y++ {
					for x := task.Region.Min.X; x < task.Region.Max.X; x++ {
						seen[image.Pt(x, y)]++
					}
				}
			}

			if len(seen) != bounds.Dx()*bounds.Dy() {
				t.Errorf("Split(%s, %d) covered %d pixels, want %d", generation, tileSize, len(seen), bounds.Dx()*bounds.Dy())
			}
			for p, count := range seen {
				if count != 1 {
					t.Errorf("Split(%s, %d) covered %v %d times", generation, tileSize, p, count)
				}
			}
		}
	}
}

func TestSplitCounts(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 40)

	tests := []struct {
		generation Generation
		tileSize   int
		want       int
	}{
		{Row, 0, 40},
		{Column, 0, 100},
		{Image, 0, 1},
		{Grid, 32, 4 * 2},
		{Grid, 0, 2 * 1},
	}

	for _, tt := range tests {
		tasks, err := Split(bounds, tt.generation, tt.tileSize)
		if err != nil {
			t.Fatalf("Split(%s) error: %v", tt.generation, err)
		}
		if len(tasks) != tt.want {
			t.Errorf("Split(%s, %d) = %d tasks, want %d", tt.generation, tt.tileSize, len(tasks), tt.want)
		}
		for i, task := range tasks {
			if task.ID != uint(i) {
				t.Errorf("tasks[%d].ID = %d", i, task.ID)
			}
		}
	}
}

func TestSplitEmptyBounds(t *testing.T) {
	for _, generation := range []Generation{Row, Column, Image, Grid} {
		tasks, err := Split(image.Rectangle{}, generation, 8)
		if err != nil || len(tasks) != 0 {
			t.Errorf("Split(empty, %s) = %v, %v, want no tasks", generation, tasks, err)
		}
	}
}

func TestSplitUnknownGeneration(t *testing.T) {
	if _, err := Split(image.Rect(0, 0, 4, 4), Generation(7), 0); !errors.Is(err, ErrUnknownGeneration) {
		t.Errorf("Split(Generation(7)) error = %v, want ErrUnknownGeneration", err)
	}
}

func TestGenerationJSON(t *testing.T) {
	var s struct{ Generation Generation }

	if err := json.Unmarshal([]byte(`{"Generation":"grid"}`), &s); err != nil || s.Generation != Grid {
		t.Errorf("Unmarshal(grid) = %v, %v", s.Generation, err)
	}
	if err := json.Unmarshal([]byte(`{"Generation":"spiral"}`), &s); !errors.Is(err, ErrUnknownGeneration) {
		t.Errorf("Unmarshal(spiral) error = %v, want ErrUnknownGeneration", err)
	}

	bytes, err := json.Marshal(struct{ Generation Generation }{Column})
	if err != nil || string(bytes) != `{"Generation":"Column"}` {
		t.Errorf("Marshal(Column) = %s, %v", bytes, err)
	}
}
