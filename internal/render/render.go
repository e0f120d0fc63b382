// Package render draws hold markers onto a route canvas.
//
// A canvas must not be shared between goroutines while markers are being
// drawn; give each concurrent build its own canvas.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"climb-routes/pkg/colorutil"
	"climb-routes/pkg/geometry"
)

// Default marker geometry, matching the route images produced so far.
const (
	DefaultRadius      = 25
	DefaultStrokeWidth = 5
)

// MaxRadius is the largest accepted marker radius.
const MaxRadius = 1 << 14

var (
	// ErrInvalidStyle is returned for markers with non-positive radius or
	// stroke, or a radius above MaxRadius.
	ErrInvalidStyle = errors.New("invalid marker style")
	// ErrUnknownRenderer is returned by New for names with no registered backend.
	ErrUnknownRenderer = errors.New("unknown renderer")
)

// Style describes the hold marker: an unfilled ring whose outer edge sits
// Radius pixels from the centre and whose stroke grows inward.
type Style struct {
	Radius      int
	StrokeWidth int
	Color       color.RGBA
}

// DefaultStyle returns a red ring of radius 25 and stroke 5.
func DefaultStyle() Style {
	return Style{
		Radius:      DefaultRadius,
		StrokeWidth: DefaultStrokeWidth,
		Color:       colorutil.Red,
	}
}

// Validate checks that the ring has a positive size.
func (s Style) Validate() error {
	if s.Radius <= 0 || s.Radius > MaxRadius {
		return fmt.Errorf("%w: radius %d", ErrInvalidStyle, s.Radius)
	}
	if s.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width %d", ErrInvalidStyle, s.StrokeWidth)
	}
	return nil
}

// Bounds returns the pixel rectangle a marker at center can touch. The centre
// is first saturated to ±geometry.MaxPixel and the radius to MaxRadius, so
// the corners never wrap around.
func (s Style) Bounds(center geometry.PixelPoint) image.Rectangle {
	x, y := clampInt(center.X, geometry.MaxPixel), clampInt(center.Y, geometry.MaxPixel)
	r := clampInt(s.Radius, MaxRadius)
	return image.Rect(x-r, y-r, x+r+1, y+r+1)
}

func clampInt(v, limit int) int {
	return min(max(v, -limit), limit)
}

// Renderer draws one marker into canvas, in place. Parts of the marker that
// fall outside the canvas are clipped.
type Renderer interface {
	DrawMarker(canvas *image.RGBA, center geometry.PixelPoint, style Style) error
}

// Factory creates a Renderer.
type Factory func() Renderer

// DefaultRenderer is the backend used when none is configured.
const DefaultRenderer = "ring"

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend available under name. Backends register
// themselves from init.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("render: Register called twice for " + name)
	}
	registry[name] = f
}

// New returns the backend registered under name. An empty name selects
// DefaultRenderer.
func New(name string) (Renderer, error) {
	if name == "" {
		name = DefaultRenderer
	}
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRenderer, name, Available())
	}
	return f(), nil
}

// Available lists the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
