package imageio

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// Format identifies an output image encoding
type Format string

// Supported output formats
const (
	FormatAuto Format = "auto"
	FormatP6   Format = "p6"
	FormatP3   Format = "p3"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every concrete format in the order shown to users
var Formats = []Format{FormatP6, FormatP3, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat validates a format name as given on the command line
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == FormatAuto {
		return f, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown image format %q", name)
}

// FormatFromFilename picks a format from the file extension; .ppm means P6
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ppm", ".pnm":
		return FormatP6, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("cannot infer image format from %q", filename)
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatP6:
		return WriteP6(w, img)
	case FormatP3:
		return WriteP3(w, img)
	case FormatPNG:
		return png.Encode(w, img.RGBA())
	case FormatBMP:
		return bmp.Encode(w, img.RGBA())
	case FormatTIFF:
		return tiff.Encode(w, img.RGBA(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unknown image format %q", format)
}

// WriteFile encodes img into filename. FormatAuto picks the format from
// the extension.
func WriteFile(filename string, img *renderer.Image, format Format) error {
	if format == FormatAuto || format == "" {
		var err error
		if format, err = FormatFromFilename(filename); err != nil {
			return err
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		os.Remove(filename)
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}
