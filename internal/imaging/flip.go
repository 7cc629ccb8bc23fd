package imaging

import "image"

// FlipHorizontal returns a copy of img mirrored around its vertical axis.
// The result is normalized to an RGBA buffer with a zero origin.
func FlipHorizontal(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Set(x, y, img.At(bounds.Min.X+width-1-x, bounds.Min.Y+y))
		}
	}
	return out
}
