package renderer

import (
	"image"
	"image/color"
)

// MaxColor is the largest channel value written to an Image
const MaxColor = 255

// Pixel is one 8-bit RGB sample
type Pixel struct {
	R, G, B uint8
}

// Image is a row-major RGB pixel buffer as handed to the image writers
type Image struct {
	Width    int
	Height   int
	MaxColor int
	Pixels   []Pixel
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		MaxColor: MaxColor,
		Pixels:   make([]Pixel, width*height),
	}
}

// At returns the pixel at column x, row y
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

// Set stores the pixel at column x, row y
func (img *Image) Set(x, y int, p Pixel) {
	img.Pixels[y*img.Width+x] = p
}

// RGBA converts the buffer to an opaque *image.RGBA for the standard encoders
func (img *Image) RGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return rgba
}
