package renderer

import (
	"fmt"
	"math"

	"FractalExplorer/complexnum"
	"FractalExplorer/misc"
)

// Transition is one leg of an animation: the view pans from StartCenter to
// EndCenter while the magnification moves from MagnificationStart to
// MagnificationEnd by a factor of MagnificationStep per frame.
type Transition struct {
	StartCenter        complexnum.Number
	EndCenter          complexnum.Number
	MagnificationStart float64
	MagnificationEnd   float64
	MagnificationStep  float64
	// FrameCount is derived from the magnifications and step by Verify. It is
	// only read when start and end magnification are equal.
	FrameCount uint
}

// Frame is the view of one rendered image of an animation.
type Frame struct {
	Number uint
	Zoom   float64
	Center complexnum.Number
}

func (t *Transition) String() string {
	output := "{Transition "
	output += fmt.Sprintf("Center: %s -> %s ", t.StartCenter, t.EndCenter)
	output += fmt.Sprintf("Magnification: %g -> %g ", t.MagnificationStart, t.MagnificationEnd)
	output += fmt.Sprintf("Step: %g ", t.MagnificationStep)
	output += fmt.Sprintf("Frames: %d}", t.FrameCount)
	return output
}

func (t *Transition) Verify() error {
	if t.MagnificationStart <= 0 || math.IsNaN(t.MagnificationStart) {
		t.MagnificationStart = 0.5
	}
	if t.MagnificationEnd <= 0 || math.IsNaN(t.MagnificationEnd) {
		t.MagnificationEnd = 1.5
	}
	if t.MagnificationStep <= 1 || math.IsNaN(t.MagnificationStep) {
		t.MagnificationStep = 1.1
	}

	/*
	 * The number of frames n is the number of steps between the two magnifications
	 *
	 * start * step^n = end
	 * n = log(end / start) / log(step)
	 */
	if t.MagnificationStart != t.MagnificationEnd {
		ratio := math.Abs(math.Log(t.MagnificationEnd / t.MagnificationStart))
		// Exact powers of the step must not gain a frame from rounding
		t.FrameCount = uint(math.Ceil(ratio/math.Log(t.MagnificationStep) - 1e-9))
	}
	if t.FrameCount == 0 {
		t.FrameCount = 1
	}
	return nil
}

// ZoomingIn reports whether the magnification grows over the transition.
func (t *Transition) ZoomingIn() bool {
	return t.MagnificationStart < t.MagnificationEnd
}

// Frames lists the views of the transition. Frame numbers start at first.
// The magnification moves geometrically so every frame zooms by the same
// factor; the last frame lands exactly on the end values. The center eases
// out while zooming in and eases in while zooming out, which keeps the
// target on screen.
func (t *Transition) Frames(first uint) []Frame {
	frames := make([]Frame, 0, t.FrameCount)

	for frame := uint(1); frame <= t.FrameCount; frame++ {
		progress := float64(frame) / float64(t.FrameCount)

		ease := misc.EaseInExpo(progress)
		if t.ZoomingIn() {
			ease = misc.EaseOutExpo(progress)
		}

		center := complexnum.New(
			misc.LerpFloat64(t.StartCenter.Real(), t.EndCenter.Real(), ease),
			misc.LerpFloat64(t.StartCenter.Imaginary(), t.EndCenter.Imaginary(), ease),
		)
		zoom := misc.LerpLog(t.MagnificationStart, t.MagnificationEnd, progress)
		if frame == t.FrameCount {
			zoom = t.MagnificationEnd
		}

		frames = append(frames, Frame{
			Number: first + frame - 1,
			Zoom:   zoom,
			Center: center,
		})
	}

	return frames
}

// Frames chains the frames of every transition, numbering them from 1.
func Frames(transitions []Transition) []Frame {
	var frames []Frame
	for i := range transitions {
		frames = append(frames, transitions[i].Frames(uint(len(frames))+1)...)
	}
	return frames
}
