// Package image provides wall image loading, canvas duplication and route
// image persistence.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"climb-routes/internal/logging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrWallImageNotFound is returned when the wall image path does not name a regular file.
	ErrWallImageNotFound = errors.New("wall image not found")
	// ErrUnreadableImage is returned when the wall image exists but cannot be decoded.
	ErrUnreadableImage = errors.New("unreadable image")
)

// Wall is a decoded wall photograph. The pixel data is never modified;
// annotate a Duplicate instead.
type Wall struct {
	Path   string      // Resolved file path
	Format string      // Format name reported by the decoder
	Image  image.Image // Decoded pixels
}

// WallPath joins a wall image directory and filename.
func WallPath(dir, filename string) string {
	return filepath.Join(dir, filename)
}

// Open loads the wall image at path.
func Open(path string) (*Wall, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWallImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat wall image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrWallImageNotFound, path)
	}
	if !IsSupportedFormat(path) {
		return nil, fmt.Errorf("%w: %s: extension not one of %v", ErrUnreadableImage, path, SupportedFormats())
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wall image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	w := &Wall{Path: path, Format: format, Image: img}
	logging.Logger().Info("wall image loaded",
		"path", path, "format", format, "width", w.Width(), "height", w.Height())
	return w, nil
}

// Width returns the image width in pixels.
func (w *Wall) Width() int {
	if w.Image == nil {
		return 0
	}
	return w.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (w *Wall) Height() int {
	if w.Image == nil {
		return 0
	}
	return w.Image.Bounds().Dy()
}

// SupportedFormats returns the file extensions that can be read.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a readable image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
