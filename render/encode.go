package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file; "-" means stdout.
func SavePNG(path string, img image.Image) error {
	if path == "-" {
		return WritePNG(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
