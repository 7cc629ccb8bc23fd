package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// fallbackAspectRatio is used when the device does not report its frame
// dimensions (some V4L2 drivers return 0 before the first read).
const fallbackAspectRatio = 4.0 / 3.0

// Webcam reads frames from a local camera through gocv. A single Mat is
// reused across reads; ReadFrame converts it to an RGBA image, which is also
// where the BGR channel order of OpenCV frames is translated for the display
// surface.
type Webcam struct {
	device int
	cam    *gocv.VideoCapture
	mat    gocv.Mat
	aspect float64
	open   bool
}

// Open opens the camera at the given device index and caches its native
// aspect ratio. Errors wrap ErrDeviceUnavailable.
func Open(device int) (*Webcam, error) {
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, device, err)
	}
	if !cam.IsOpened() {
		cam.Close()
		return nil, fmt.Errorf("%w: device %d reports a closed stream", ErrDeviceUnavailable, device)
	}

	width := cam.Get(gocv.VideoCaptureFrameWidth)
	height := cam.Get(gocv.VideoCaptureFrameHeight)
	aspect := fallbackAspectRatio
	if width > 0 && height > 0 {
		aspect = width / height
	}

	return &Webcam{
		device: device,
		cam:    cam,
		mat:    gocv.NewMat(),
		aspect: aspect,
		open:   true,
	}, nil
}

// AspectRatio returns the native width/height ratio cached at open time.
func (w *Webcam) AspectRatio() float64 {
	return w.aspect
}

// ReadFrame grabs the next frame from the device. Empty grabs and decode
// failures both yield (nil, false); the caller retries next cycle.
func (w *Webcam) ReadFrame() (image.Image, bool) {
	if !w.open {
		return nil, false
	}

	if ok := w.cam.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, false
	}

	img, err := w.mat.ToImage()
	if err != nil {
		return nil, false
	}
	return img, true
}

// IsOpened reports whether the underlying device is still open.
func (w *Webcam) IsOpened() bool {
	return w.open && w.cam.IsOpened()
}

// Close releases the reusable Mat and the device handle.
func (w *Webcam) Close() error {
	if !w.open {
		return nil
	}
	w.open = false

	w.mat.Close()
	if err := w.cam.Close(); err != nil {
		return fmt.Errorf("failed to release capture device %d: %w", w.device, err)
	}
	return nil
}
