package geometry

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// ErrInvalidDimensions is returned when a canvas size is not strictly positive.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// MaxPixel bounds the magnitude of a mapped coordinate. Positions further out
// saturate here; they stay off any decodable canvas, and marker arithmetic
// around them cannot overflow an int.
const MaxPixel = 1 << 29

// Mapper converts normalized positions into pixel positions for one canvas size.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	ctm matrix.Matrix // normalized space -> device space
}

// NewMapper returns a Mapper for a width x height canvas.
func NewMapper(width, height int) (*Mapper, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Mapper{ctm: matrix.Scale(float64(width), float64(height))}, nil
}

// ToPixel maps p onto the canvas. Each axis is rounded half-to-even, so
// 0.5 of an odd pixel count lands on the even neighbour. The result is not
// clipped to the canvas, only saturated at ±MaxPixel.
func (m *Mapper) ToPixel(p NormalizedPoint) PixelPoint {
	x := m.ctm[0]*p.X + m.ctm[2]*p.Y + m.ctm[4]
	y := m.ctm[1]*p.X + m.ctm[3]*p.Y + m.ctm[5]
	return PixelPoint{
		X: saturate(math.RoundToEven(x)),
		Y: saturate(math.RoundToEven(y)),
	}
}

// saturate converts v to an int in [-MaxPixel, MaxPixel]. NaN maps to
// -MaxPixel, which is off-canvas like every other saturated value.
func saturate(v float64) int {
	switch {
	case v >= MaxPixel:
		return MaxPixel
	case v > -MaxPixel:
		return int(v)
	default:
		return -MaxPixel
	}
}

// ToPixel maps p onto a width x height canvas.
func ToPixel(p NormalizedPoint, width, height int) (PixelPoint, error) {
	m, err := NewMapper(width, height)
	if err != nil {
		return PixelPoint{}, err
	}
	return m.ToPixel(p), nil
}
