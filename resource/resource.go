package resource

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("resource: unsupported output format")

const DefaultQuality = 95

// Load opens and decodes the image at path, applying any EXIF
// orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(filepath.Clean(path), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("resource: load %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image in any registered format, Netpbm included.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("resource: decode: %w", err)
	}
	return img, format, nil
}

// Save encodes img to path in the format implied by its extension.
// quality only applies to JPEG.
func Save(img image.Image, path string, quality int) error {
	if !CanSave(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	if err := imaging.Save(img, filepath.Clean(path), imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("resource: save %s: %w", path, err)
	}
	return nil
}

// CanSave reports whether Save knows an encoder for path's extension.
func CanSave(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}
