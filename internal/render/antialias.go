package render

import (
	"fmt"
	"image"

	"climb-routes/internal/logging"
	"climb-routes/pkg/geometry"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

func init() {
	Register("antialias", func() Renderer { return Antialias{} })
}

// Antialias strokes the ring with the gg software rasteriser. Edge pixels
// are blended with the wall, so output is smoother than Ring but not
// bit-exact across gg versions.
type Antialias struct{}

// DrawMarker implements Renderer.
func (Antialias) DrawMarker(canvas *image.RGBA, center geometry.PixelPoint, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}

	// One pixel of slack for anti-aliased edges.
	box := style.Bounds(center).Inset(-1).Intersect(canvas.Bounds())
	if box.Empty() {
		return nil
	}

	dc := gg.NewContextForImage(canvas.SubImage(box))
	defer dc.Close()

	// gg addresses pixel edges; shift to the pixel centre Ring measures from.
	cx := float64(center.X-box.Min.X) + 0.5
	cy := float64(center.Y-box.Min.Y) + 0.5

	// Stroke is centred on the path, so stroke along the middle of the band.
	w := float64(style.StrokeWidth)
	r := float64(style.Radius) - w/2
	if r < w/2 {
		// The band reaches the centre: fill a disc instead.
		dc.DrawCircle(cx, cy, float64(style.Radius))
		dc.SetColor(style.Color)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill marker: %w", err)
		}
	} else {
		dc.DrawCircle(cx, cy, r)
		dc.SetColor(style.Color)
		dc.SetLineWidth(w)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke marker: %w", err)
		}
	}

	draw.Draw(canvas, box, dc.Image(), image.Point{}, draw.Src)
	logging.Logger().Debug("antialiased marker", "x", center.X, "y", center.Y, "box", box.String())
	return nil
}
