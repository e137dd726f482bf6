// Package imagestore loads and caches the raster images placed on slides.
package imagestore

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Image size limits to prevent memory exhaustion.
const (
	MaxImageWidth  = 4096             // Maximum width in pixels
	MaxImageHeight = 4096             // Maximum height in pixels
	MaxImageBytes  = 16 * 1024 * 1024 // 16MB uncompressed (RGBA at 4 bytes/pixel)
)

// ErrTooLarge is returned for images exceeding the size limits.
var ErrTooLarge = errors.New("image too large")

// LoadImage loads an image from a file path.
// Supports PNG, JPEG, GIF (first frame only), BMP, TIFF and WebP.
// Returns the decoded image or an error if the file cannot be read,
// the format is not supported, or the image exceeds size limits.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	// Reject oversized images before decoding the pixels.
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind image file: %w", err)
	}

	// image.Decode auto-detects format from registered decoders
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	if err := checkSize(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}
	return img, nil
}

func checkSize(width, height int) error {
	if width > MaxImageWidth || height > MaxImageHeight {
		return fmt.Errorf("%w: %dx%d (max %dx%d)",
			ErrTooLarge, width, height, MaxImageWidth, MaxImageHeight)
	}

	// Check uncompressed size (assuming RGBA at 4 bytes per pixel)
	if uncompressedSize := width * height * 4; uncompressedSize > MaxImageBytes {
		return fmt.Errorf("%w: uncompressed size %d bytes (max %d bytes)",
			ErrTooLarge, uncompressedSize, MaxImageBytes)
	}
	return nil
}
