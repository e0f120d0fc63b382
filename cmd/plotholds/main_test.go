package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wallimage "climb-routes/internal/image"
	"climb-routes/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeWall(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
}

func TestPlot(t *testing.T) {
	wallDir, routeDir := t.TempDir(), t.TempDir()
	writeWall(t, wallDir, "wall.png", 200, 400)

	code, out, stderr := runCmd(t, "wall.png", wallDir, routeDir, "5", `[{"x": 0.5, "y": 0.5}]`)
	require.Equal(t, 0, code, stderr)

	path := filepath.Join(routeDir, "r5-wall.png")
	assert.Equal(t, path, strings.TrimSpace(out))

	saved, err := wallimage.Open(path)
	require.NoError(t, err)
	canvas := wallimage.Duplicate(saved.Image)
	assert.Equal(t, colorutil.Red, canvas.RGBAAt(125, 200))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(100, 200))
}

func TestPlotWithConfigAndRenderer(t *testing.T) {
	wallDir, routeDir := t.TempDir(), t.TempDir()
	writeWall(t, wallDir, "wall.png", 100, 100)
	cfg := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("marker:\n  radius: 10\n  stroke_width: 2\n  color: blue\n"), 0o644))

	code, _, stderr := runCmd(t, "-config", cfg, "wall.png", wallDir, routeDir, "1", `[{"x": 0.5, "y": 0.5}]`)
	require.Equal(t, 0, code, stderr)

	saved, err := wallimage.Open(filepath.Join(routeDir, "r1-wall.png"))
	require.NoError(t, err)
	canvas := wallimage.Duplicate(saved.Image)
	assert.Equal(t, colorutil.Blue, canvas.RGBAAt(60, 50))
	assert.Equal(t, colorutil.White, canvas.RGBAAt(61, 50))

	code, _, stderr = runCmd(t, "-renderer", "antialias", "wall.png", wallDir, routeDir, "2", `[]`)
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(routeDir, "r2-wall.png"))
}

func TestPlotErrors(t *testing.T) {
	wallDir, routeDir := t.TempDir(), t.TempDir()
	writeWall(t, wallDir, "wall.png", 50, 50)
	holds := `[{"x": 0.5, "y": 0.5}]`

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"too few", []string{"wall.png", wallDir, routeDir, "1"}, "Usage"},
		{"too many", []string{"wall.png", wallDir, routeDir, "1", holds, "extra"}, "Usage"},
		{"missing wall", []string{"nope.png", wallDir, routeDir, "1", holds}, "wall image not found"},
		{"bad route id", []string{"wall.png", wallDir, routeDir, "abc", holds}, "invalid route id"},
		{"bad json", []string{"wall.png", wallDir, routeDir, "1", `[{"x":`}, "failed to parse holds"},
		{"bad hold", []string{"wall.png", wallDir, routeDir, "1", `[{"x": 0.5}]`}, "invalid hold"},
		{"unknown renderer", []string{"-renderer", "crayon", "wall.png", wallDir, routeDir, "1", holds}, "unknown renderer"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr := runCmd(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tc.msg)
		})
	}

	entries, err := os.ReadDir(routeDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed runs must not write route images")
}

func TestUndecodableWall(t *testing.T) {
	wallDir, routeDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wallDir, "wall.png"), []byte("junk"), 0o644))

	code, _, stderr := runCmd(t, "wall.png", wallDir, routeDir, "1", `[]`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unreadable image")
}
