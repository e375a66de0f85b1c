package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// SaveImage encodes img into path, picking the format from the extension:
// .png, .jpg/.jpeg, .bmp or .tif/.tiff.
func SaveImage(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %w", path, err)
	}
	if err = encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("unable to save image %s - %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to close image %s - %w", path, err)
	}
	return nil
}

// CheckFormat reports whether SaveImage can write files with the extension
// format, given with or without the leading dot.
func CheckFormat(format string) error {
	_, err := encoderFor("image." + strings.TrimPrefix(format, "."))
	return err
}

func encoderFor(path string) (func(*os.File, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	case ".jpg", ".jpeg":
		return func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, nil
	case ".tif", ".tiff":
		return func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
