// Package route builds route images and selects routes by grade.
package route

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	wallimage "climb-routes/internal/image"
	"climb-routes/internal/logging"
	"climb-routes/internal/render"
	"climb-routes/pkg/geometry"
)

// Builder draws a route's holds onto a copy of a wall image. The wall image
// itself is never modified. A Builder holds no per-build state and may be
// used from several goroutines; every build gets its own canvas.
type Builder struct {
	renderer render.Renderer
	style    render.Style
}

// NewBuilder returns a Builder drawing markers with r in the given style.
// A nil r selects render.Ring.
func NewBuilder(r render.Renderer, style render.Style) (*Builder, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = render.Ring{}
	}
	return &Builder{renderer: r, style: style}, nil
}

// Build opens the wall image at wallPath and returns an annotated copy.
func (b *Builder) Build(wallPath string, r geometry.Route) (*image.RGBA, error) {
	wall, err := wallimage.Open(wallPath)
	if err != nil {
		return nil, err
	}
	return b.Render(wall, r)
}

// Render returns a copy of wall with one marker per hold, drawn in route order.
// Holds outside the unit square are drawn unclamped and clip at the canvas edge.
func (b *Builder) Render(wall *wallimage.Wall, r geometry.Route) (*image.RGBA, error) {
	mapper, err := geometry.NewMapper(wall.Width(), wall.Height())
	if err != nil {
		return nil, fmt.Errorf("wall image %s: %w", wall.Path, err)
	}

	log := logging.Logger()
	if out := r.OutsideUnitSquare(); len(out) > 0 {
		log.Warn("holds outside the unit square", "indices", out)
	}

	canvas := wall.Duplicate()
	for i, p := range r {
		px := mapper.ToPixel(p)
		log.Debug("hold", "index", i, "x", p.X, "y", p.Y, "px", px.X, "py", px.Y)
		if err := b.renderer.DrawMarker(canvas, px, b.style); err != nil {
			return nil, fmt.Errorf("hold %d: %w", i, err)
		}
	}
	return canvas, nil
}

// Plot renders r onto <wallDir>/<wallFilename> and saves the result as
// <routeDir>/r<routeID>-<wallFilename>. Nothing is written unless every hold
// was drawn. It returns the path written.
func (b *Builder) Plot(wallDir, wallFilename, routeDir, routeID string, r geometry.Route) (string, error) {
	if err := ValidateRouteID(routeID); err != nil {
		return "", err
	}
	canvas, err := b.Build(wallimage.WallPath(wallDir, wallFilename), r)
	if err != nil {
		return "", err
	}
	out := ImagePath(routeDir, routeID, wallFilename)
	if err := Save(canvas, out); err != nil {
		return "", err
	}
	return out, nil
}

// Save persists a finished route image; the format follows the extension of path.
func Save(img image.Image, path string) error {
	return wallimage.Save(img, path)
}

// ImageFilename returns the route image filename for a route on a wall image.
func ImageFilename(routeID, wallFilename string) string {
	return "r" + routeID + "-" + wallFilename
}

// ImagePath joins routeDir and ImageFilename.
func ImagePath(routeDir, routeID, wallFilename string) string {
	return filepath.Join(routeDir, ImageFilename(routeID, wallFilename))
}

// ValidateRouteID checks that id is a non-negative decimal integer.
func ValidateRouteID(id string) error {
	if _, err := strconv.ParseUint(id, 10, 63); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRouteID, id)
	}
	return nil
}
