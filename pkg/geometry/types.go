// Package geometry provides the coordinate types shared by route selection and
// route image rendering.
package geometry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidHold is returned when a hold object cannot be read as an (x, y) pair.
var ErrInvalidHold = errors.New("invalid hold")

// NormalizedPoint is a hold position expressed as a fraction of the image
// width and height. Values outside [0,1] are accepted and are not clamped.
type NormalizedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewNormalizedPoint creates a new NormalizedPoint.
func NewNormalizedPoint(x, y float64) NormalizedPoint {
	return NormalizedPoint{X: x, Y: y}
}

// InUnitSquare reports whether both components lie in the closed unit interval.
func (p NormalizedPoint) InUnitSquare() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// UnmarshalJSON reads a hold object with exactly two numeric members.
// Member order decides the axis: the first value is x, the second is y,
// whatever the keys are called. Repeated keys are rejected.
func (p *NormalizedPoint) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHold, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected object, got %s", ErrInvalidHold, data)
	}

	var values []float64
	seen := make(map[string]bool, 2)
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHold, err)
		}
		name, _ := key.(string)
		if seen[name] {
			return fmt.Errorf("%w: duplicate member %q", ErrInvalidHold, name)
		}
		seen[name] = true
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHold, err)
		}
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Errorf("%w: member %v is not a number", ErrInvalidHold, key)
		}
		f, err := n.Float64()
		if err != nil {
			return fmt.Errorf("%w: member %v: %v", ErrInvalidHold, key, err)
		}
		values = append(values, f)
	}

	if len(values) != 2 {
		return fmt.Errorf("%w: want 2 values, got %d", ErrInvalidHold, len(values))
	}
	p.X, p.Y = values[0], values[1]
	return nil
}

// PixelPoint is a position on a concrete image, in pixels.
type PixelPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Route is an ordered list of holds. Order is climbing order.
type Route []NormalizedPoint

// ParseRoute decodes a JSON array of hold objects.
func ParseRoute(data []byte) (Route, error) {
	var r Route
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// OutsideUnitSquare returns the indices of holds outside [0,1]x[0,1].
func (r Route) OutsideUnitSquare() []int {
	var idx []int
	for i, p := range r {
		if !p.InUnitSquare() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clone returns a copy that does not share storage with r.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}
