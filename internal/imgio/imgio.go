// Package imgio provides the PNG decode/encode and glyph scaling primitives
// used by the emoji pack pipeline.
package imgio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// LoadPNG loads a PNG image from the given file path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imgio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode PNG: %w", err)
	}
	return img, nil
}

// Scale resamples src to width w and height h with a bilinear (triangle)
// kernel, returning a fresh NRGBA buffer anchored at the origin.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG saves the image as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgio: create file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("imgio: encode PNG: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("imgio: close file: %w", err)
	}
	return nil
}
