package image

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"climb-routes/internal/logging"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when no encoder exists for an output extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// JPEGQuality is the quality used when saving JPEG route images.
const JPEGQuality = 95

// Encode writes img to w in the format named by ext (".png", ".jpg", ...).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes img to path, choosing the encoder from the file extension.
// The parent directory must already exist. A failed encode removes the
// partially written file.
func Save(img image.Image, path string) (err error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create route image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close route image: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(f, img, ext); err != nil {
		return fmt.Errorf("failed to encode route image: %w", err)
	}

	b := img.Bounds()
	logging.Logger().Info("route image saved", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
