package imaging

import (
	"math"
	"testing"
)

// ratioTolerance allows for the integer rounding of the fitted dimensions.
const ratioTolerance = 0.05

func TestFitRectPreservesAspectWithinCanvas(t *testing.T) {
	cases := []struct {
		name             string
		canvasW, canvasH int
		aspect           float64
	}{
		{"landscape canvas 4:3 video", 800, 600, 4.0 / 3.0},
		{"landscape canvas 16:9 video", 800, 600, 16.0 / 9.0},
		{"portrait canvas 16:9 video", 300, 900, 16.0 / 9.0},
		{"square canvas square video", 500, 500, 1.0},
		{"wide canvas tall video", 1920, 200, 0.5},
		{"after resize to 400x300", 400, 300, 16.0 / 9.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fit := FitRect(tc.canvasW, tc.canvasH, tc.aspect)
			w, h := fit.Dx(), fit.Dy()

			if w > tc.canvasW || h > tc.canvasH {
				t.Errorf("Fit %dx%d exceeds canvas %dx%d", w, h, tc.canvasW, tc.canvasH)
			}
			if w < 1 || h < 1 {
				t.Errorf("Fit %dx%d below minimum size", w, h)
			}

			got := float64(w) / float64(h)
			if math.Abs(got-tc.aspect)/tc.aspect > ratioTolerance {
				t.Errorf("Aspect ratio %f differs from %f beyond tolerance", got, tc.aspect)
			}
		})
	}
}

func TestFitRectCentersResult(t *testing.T) {
	fit := FitRect(800, 600, 16.0/9.0)

	// 800 wide at 16:9 is 450 tall, leaving 150 above and below.
	if fit.Min.X != 0 {
		t.Errorf("Expected x offset 0, got %d", fit.Min.X)
	}
	if fit.Min.Y != 75 {
		t.Errorf("Expected y offset 75, got %d", fit.Min.Y)
	}
	if fit.Dx() != 800 || fit.Dy() != 450 {
		t.Errorf("Expected 800x450, got %dx%d", fit.Dx(), fit.Dy())
	}
}

func TestFitRectHeightLimited(t *testing.T) {
	fit := FitRect(800, 300, 4.0/3.0)

	// Height-bound: 300 tall at 4:3 is 400 wide, centered horizontally.
	if fit.Dx() != 400 || fit.Dy() != 300 {
		t.Errorf("Expected 400x300, got %dx%d", fit.Dx(), fit.Dy())
	}
	if fit.Min.X != 200 || fit.Min.Y != 0 {
		t.Errorf("Expected offset (200, 0), got (%d, %d)", fit.Min.X, fit.Min.Y)
	}
}

func TestFitRectDegenerateCanvas(t *testing.T) {
	for _, canvas := range []struct{ w, h int }{{1, 1}, {1, 1000}, {1000, 1}} {
		fit := FitRect(canvas.w, canvas.h, 16.0/9.0)
		if fit.Dx() < 1 || fit.Dy() < 1 {
			t.Errorf("Canvas %dx%d: fit %dx%d below one pixel", canvas.w, canvas.h, fit.Dx(), fit.Dy())
		}
	}
}
