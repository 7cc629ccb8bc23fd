// Package capture wraps a local camera device behind a small frame-on-demand
// contract consumed by the viewer. The real implementation sits on gocv; a
// scripted mock is provided for tests.
package capture

import (
	"errors"
	"image"
)

// ErrDeviceUnavailable indicates the camera device could not be opened at
// startup. There is no recovery path: callers surface a diagnostic and exit.
var ErrDeviceUnavailable = errors.New("capture device unavailable")

// Source yields one frame per read request and reports the fixed native
// aspect ratio of the device. A Source belongs to a single goroutine; it is
// not safe for concurrent use.
type Source interface {
	// AspectRatio returns width divided by height of the native video,
	// held constant for the session.
	AspectRatio() float64

	// ReadFrame returns the next frame, or (nil, false) when none is
	// available this cycle. A transient read failure and end-of-stream
	// look identical; callers simply skip the cycle and retry.
	ReadFrame() (image.Image, bool)

	// IsOpened reports whether the device is still delivering frames.
	IsOpened() bool

	// Close releases the device. Safe to call more than once.
	Close() error
}
