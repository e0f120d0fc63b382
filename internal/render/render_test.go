package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"climb-routes/pkg/colorutil"
	"climb-routes/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)
	return img
}

func TestStyleValidate(t *testing.T) {
	require.NoError(t, DefaultStyle().Validate())

	for _, s := range []Style{
		{Radius: 0, StrokeWidth: 5},
		{Radius: -3, StrokeWidth: 5},
		{Radius: 25, StrokeWidth: 0},
		{Radius: MaxRadius + 1, StrokeWidth: 5},
	} {
		assert.ErrorIs(t, s.Validate(), ErrInvalidStyle)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, 25, s.Radius)
	assert.Equal(t, 5, s.StrokeWidth)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.Color)
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, Available(), "ring")
	assert.Contains(t, Available(), "antialias")

	r, err := New("")
	require.NoError(t, err)
	assert.IsType(t, Ring{}, r)

	_, err = New("crayon")
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() { Register("ring", func() Renderer { return Ring{} }) })
}

func TestRingGeometry(t *testing.T) {
	canvas := whiteCanvas(1000, 2000)
	center := geometry.PixelPoint{X: 500, Y: 1000}
	require.NoError(t, Ring{}.DrawMarker(canvas, center, DefaultStyle()))

	red := colorutil.Red
	white := colorutil.White

	// Along each axis the band covers distances 21..25.
	for d := 0; d <= 30; d++ {
		want := white
		if d >= 21 && d <= 25 {
			want = red
		}
		assert.Equal(t, want, canvas.RGBAAt(center.X+d, center.Y), "east %d", d)
		assert.Equal(t, want, canvas.RGBAAt(center.X-d, center.Y), "west %d", d)
		assert.Equal(t, want, canvas.RGBAAt(center.X, center.Y+d), "south %d", d)
		assert.Equal(t, want, canvas.RGBAAt(center.X, center.Y-d), "north %d", d)
	}

	// Nothing outside the marker box changes.
	box := DefaultStyle().Bounds(center)
	for y := 900; y < 1100; y++ {
		for x := 400; x < 600; x++ {
			if !(image.Point{X: x, Y: y}).In(box) {
				require.Equal(t, white, canvas.RGBAAt(x, y), "(%d,%d)", x, y)
			}
		}
	}
}

func TestBoundsDoesNotWrap(t *testing.T) {
	s := DefaultStyle()
	for _, c := range []geometry.PixelPoint{
		{X: math.MaxInt, Y: 50},
		{X: math.MinInt, Y: 50},
		{X: 50, Y: math.MinInt},
	} {
		box := s.Bounds(c)
		assert.Equal(t, 2*DefaultRadius+1, box.Dx(), "%v", c)
		assert.Equal(t, 2*DefaultRadius+1, box.Dy(), "%v", c)
		assert.True(t, box.Intersect(image.Rect(0, 0, 100, 100)).Empty(), "%v", c)
	}
}

func TestFarCentreLeavesCanvasUnchanged(t *testing.T) {
	for _, c := range []geometry.PixelPoint{
		{X: math.MaxInt, Y: 50},
		{X: math.MinInt, Y: 50},
		{X: 50, Y: math.MaxInt},
		{X: geometry.MaxPixel, Y: -geometry.MaxPixel},
	} {
		for name, r := range map[string]Renderer{"ring": Ring{}, "antialias": Antialias{}} {
			canvas := whiteCanvas(100, 100)
			want := whiteCanvas(100, 100)
			require.NoError(t, r.DrawMarker(canvas, c, DefaultStyle()), "%s %v", name, c)
			assert.Equal(t, want.Pix, canvas.Pix, "%s %v", name, c)
		}
	}
}

func TestRingIsSymmetric(t *testing.T) {
	canvas := whiteCanvas(101, 101)
	require.NoError(t, Ring{}.DrawMarker(canvas, geometry.PixelPoint{X: 50, Y: 50}, DefaultStyle()))
	for y := 0; y <= 100; y++ {
		for x := 0; x <= 100; x++ {
			require.Equal(t, canvas.RGBAAt(x, y), canvas.RGBAAt(100-x, y))
			require.Equal(t, canvas.RGBAAt(x, y), canvas.RGBAAt(y, x))
		}
	}
}

func TestRingThickStrokeFillsDisc(t *testing.T) {
	canvas := whiteCanvas(20, 20)
	style := Style{Radius: 4, StrokeWidth: 10, Color: colorutil.Blue}
	require.NoError(t, Ring{}.DrawMarker(canvas, geometry.PixelPoint{X: 10, Y: 10}, style))
	assert.Equal(t, colorutil.Blue, canvas.RGBAAt(10, 10))
	assert.Equal(t, colorutil.Blue, canvas.RGBAAt(14, 10))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(15, 10))
}

func TestRingClipsAtCanvasEdge(t *testing.T) {
	canvas := whiteCanvas(40, 40)
	require.NoError(t, Ring{}.DrawMarker(canvas, geometry.PixelPoint{X: 0, Y: 0}, DefaultStyle()))
	assert.Equal(t, colorutil.Red, canvas.RGBAAt(23, 0))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(0, 0))

	// Entirely off-canvas markers are a no-op.
	before := append([]uint8(nil), canvas.Pix...)
	require.NoError(t, Ring{}.DrawMarker(canvas, geometry.PixelPoint{X: -200, Y: 500}, DefaultStyle()))
	assert.Equal(t, before, canvas.Pix)
}

func TestRingRejectsInvalidStyle(t *testing.T) {
	canvas := whiteCanvas(10, 10)
	err := Ring{}.DrawMarker(canvas, geometry.PixelPoint{X: 5, Y: 5}, Style{Radius: 0, StrokeWidth: 1})
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestAntialiasRing(t *testing.T) {
	canvas := whiteCanvas(100, 100)
	center := geometry.PixelPoint{X: 50, Y: 50}
	require.NoError(t, Antialias{}.DrawMarker(canvas, center, DefaultStyle()))

	// Middle of the band is solid red.
	mid := canvas.RGBAAt(72, 50)
	assert.Greater(t, mid.R, uint8(200))
	assert.Less(t, mid.G, uint8(80))
	assert.Less(t, mid.B, uint8(80))

	// No fill and nothing outside the ring.
	assert.Equal(t, colorutil.White, canvas.RGBAAt(50, 50))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(60, 50))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(80, 50))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(2, 2))
}

func TestAntialiasOffCanvas(t *testing.T) {
	canvas := whiteCanvas(30, 30)
	before := append([]uint8(nil), canvas.Pix...)
	require.NoError(t, Antialias{}.DrawMarker(canvas, geometry.PixelPoint{X: 300, Y: 300}, DefaultStyle()))
	assert.Equal(t, before, canvas.Pix)
}
