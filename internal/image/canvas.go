package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Duplicate copies src into a new RGBA canvas with origin (0,0) and the
// same size. The returned canvas shares no memory with src.
func Duplicate(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Duplicate returns a mutable copy of the wall pixels.
func (w *Wall) Duplicate() *image.RGBA {
	return Duplicate(w.Image)
}
