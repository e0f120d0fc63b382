//go:build opencv

package render

import (
	"fmt"
	"image"
	"image/color"

	"climb-routes/pkg/geometry"

	"gocv.io/x/gocv"
)

func init() {
	Register("opencv", func() Renderer { return OpenCV{} })
}

// OpenCV draws the ring with gocv.Circle. Only built with -tags opencv.
type OpenCV struct{}

// DrawMarker implements Renderer.
func (OpenCV) DrawMarker(canvas *image.RGBA, center geometry.PixelPoint, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}

	box := style.Bounds(center).Inset(-1).Intersect(canvas.Bounds())
	if box.Empty() {
		return nil
	}

	sub := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := 0; y < box.Dy(); y++ {
		src := canvas.PixOffset(box.Min.X, box.Min.Y+y)
		copy(sub.Pix[y*sub.Stride:y*sub.Stride+box.Dx()*4], canvas.Pix[src:src+box.Dx()*4])
	}

	mat, err := gocv.NewMatFromBytes(box.Dy(), box.Dx(), gocv.MatTypeCV8UC4, sub.Pix)
	if err != nil {
		return fmt.Errorf("failed to wrap canvas: %w", err)
	}
	defer mat.Close()

	// OpenCV assumes BGR channel order; the Mat holds RGBA bytes, so swap.
	bgr := color.RGBA{R: style.Color.B, G: style.Color.G, B: style.Color.R, A: style.Color.A}
	// cv::circle strokes centred on the radius.
	r := style.Radius - style.StrokeWidth/2
	thickness := style.StrokeWidth
	if r <= style.StrokeWidth/2 {
		r, thickness = style.Radius, -1
	}
	gocv.Circle(&mat, image.Pt(center.X-box.Min.X, center.Y-box.Min.Y), r, bgr, thickness)

	out := mat.ToBytes()
	for y := 0; y < box.Dy(); y++ {
		dst := canvas.PixOffset(box.Min.X, box.Min.Y+y)
		copy(canvas.Pix[dst:dst+box.Dx()*4], out[y*box.Dx()*4:(y+1)*box.Dx()*4])
	}
	return nil
}
