package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// WriteP6 writes img as a binary portable pixmap
func WriteP6(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, "P6", img); err != nil {
		return err
	}

	row := make([]byte, 0, 3*img.Width)
	for y := 0; y < img.Height; y++ {
		row = row[:0]
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			row = append(row, p.R, p.G, p.B)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteP3 writes img as an ASCII portable pixmap, one image row per line
func WriteP3(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, "P3", img); err != nil {
		return err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			sep := " "
			if x == img.Width-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d%s", p.R, p.G, p.B, sep); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, magic string, img *renderer.Image) error {
	if img.MaxColor <= 0 || img.MaxColor > 255 {
		return fmt.Errorf("unsupported max color value %d", img.MaxColor)
	}
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", magic, img.Width, img.Height, img.MaxColor)
	return err
}
