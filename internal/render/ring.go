package render

import (
	"image"

	"climb-routes/pkg/geometry"
)

func init() {
	Register("ring", func() Renderer { return Ring{} })
}

// Ring draws an aliased ring with exact integer geometry: a pixel is painted
// when its squared distance d² from the centre satisfies
// (Radius-StrokeWidth)² < d² <= Radius². Output is bit-identical for the
// same inputs on every platform.
type Ring struct{}

// DrawMarker implements Renderer.
func (Ring) DrawMarker(canvas *image.RGBA, center geometry.PixelPoint, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}

	box := style.Bounds(center).Intersect(canvas.Bounds())
	if box.Empty() {
		return nil
	}

	outer := style.Radius * style.Radius
	inner := style.Radius - style.StrokeWidth
	innerSq := inner * inner

	for y := box.Min.Y; y < box.Max.Y; y++ {
		dy := y - center.Y
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := x - center.X
			d := dx*dx + dy*dy
			if d > outer {
				continue
			}
			if inner > 0 && d <= innerSq {
				continue
			}
			canvas.SetRGBA(x, y, style.Color)
		}
	}
	return nil
}
