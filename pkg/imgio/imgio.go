// Package imgio writes and reads rasters, choosing the codec from the file
// extension.
package imgio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// Write encodes img to path. The format is chosen by extension: .png,
// .jpg/.jpeg, .bmp, or .tif/.tiff.
func Write(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}

// Read decodes the raster at path, using the same extension table as Write.
func Read(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext(path) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported image extension %q", ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return img, nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext(path) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported image extension %q", ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
