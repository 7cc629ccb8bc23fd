// Package imaging holds the pure image math of the viewer: the
// aspect-preserving fit rectangle and the horizontal mirror.
package imaging

import "image"

// FitRect computes the largest rectangle with the given aspect ratio that
// fits inside a canvasW by canvasH canvas, centered. The result never drops
// below one pixel in either dimension, so a degenerate canvas still yields a
// drawable area.
func FitRect(canvasW, canvasH int, aspect float64) image.Rectangle {
	// Width-first fit, shrinking to the height when the canvas is wider
	// than the video.
	w := canvasW
	h := int(float64(w) / aspect)
	if h > canvasH {
		h = canvasH
		w = int(float64(h) * aspect)
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x := (canvasW - w) / 2
	y := (canvasH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
