package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/eyeofra/eye-of-ra/internal/imaging"
)

// videoArea is the canvas the frames land on: a black backdrop with the
// current frame centered inside the aspect-preserving fit rectangle.
// Secondary taps bubble up to the viewer's context menu.
type videoArea struct {
	widget.BaseWidget

	background *canvas.Rectangle
	frame      *canvas.Image
	aspect     float64

	onSecondaryTap func(*fyne.PointEvent)
}

var _ fyne.SecondaryTappable = (*videoArea)(nil)

func newVideoArea(aspect float64, onSecondaryTap func(*fyne.PointEvent)) *videoArea {
	a := &videoArea{
		background:     canvas.NewRectangle(color.Black),
		frame:          &canvas.Image{},
		aspect:         aspect,
		onSecondaryTap: onSecondaryTap,
	}

	// Frames are pixel-scaled to the fit rectangle before display, so the
	// image object just stretches its buffer over its own size.
	a.frame.FillMode = canvas.ImageFillStretch
	a.frame.Hide()

	a.ExtendBaseWidget(a)
	return a
}

// SetFrame swaps in the frame drawn this cycle. Only the most recent frame
// is retained.
func (a *videoArea) SetFrame(img image.Image) {
	a.frame.Image = img
	if a.frame.Hidden {
		a.frame.Show()
	}
	canvas.Refresh(a.frame)
}

// Frame returns the currently displayed frame, or nil before the first draw.
func (a *videoArea) Frame() image.Image {
	return a.frame.Image
}

// FitSize returns the current fit rectangle for the area's size.
func (a *videoArea) FitSize() image.Rectangle {
	size := a.Size()
	return imaging.FitRect(int(size.Width), int(size.Height), a.aspect)
}

// TappedSecondary opens the context menu at the pointer position.
func (a *videoArea) TappedSecondary(ev *fyne.PointEvent) {
	if a.onSecondaryTap != nil {
		a.onSecondaryTap(ev)
	}
}

// CreateRenderer builds the two-layer renderer (backdrop, frame).
func (a *videoArea) CreateRenderer() fyne.WidgetRenderer {
	return &videoAreaRenderer{area: a}
}

type videoAreaRenderer struct {
	area *videoArea
}

func (r *videoAreaRenderer) Layout(size fyne.Size) {
	r.area.background.Resize(size)

	fit := imaging.FitRect(int(size.Width), int(size.Height), r.area.aspect)
	r.area.frame.Move(fyne.NewPos(float32(fit.Min.X), float32(fit.Min.Y)))
	r.area.frame.Resize(fyne.NewSize(float32(fit.Dx()), float32(fit.Dy())))
}

func (r *videoAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *videoAreaRenderer) Refresh() {
	r.area.background.Refresh()
	r.area.frame.Refresh()
}

func (r *videoAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.area.background, r.area.frame}
}

func (r *videoAreaRenderer) Destroy() {}
