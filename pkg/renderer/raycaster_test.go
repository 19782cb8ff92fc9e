package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

func redSphereScene() *scene.Scene {
	return scene.New(
		scene.Camera{Width: 2, Height: 2},
		scene.Sphere{Color: core.NewVec3(1, 0, 0), Position: core.NewVec3(0, 0, 5), Radius: 1},
	)
}

func TestRaycaster_RedDisk(t *testing.T) {
	rc := NewRaycaster(redSphereScene(), DefaultConfig(10, 10))

	img, stats, err := rc.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Width != 10 || img.Height != 10 || img.MaxColor != 255 {
		t.Fatalf("Unexpected image header %dx%d max %d", img.Width, img.Height, img.MaxColor)
	}

	red := Pixel{R: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inDisk := (x == 4 || x == 5) && (y == 4 || y == 5)
			got := img.At(x, y)
			if inDisk && got != red {
				t.Errorf("Pixel (%d,%d): expected red, got %+v", x, y, got)
			}
			if !inDisk && got != (Pixel{}) {
				t.Errorf("Pixel (%d,%d): expected black, got %+v", x, y, got)
			}
		}
	}

	if stats.TotalPixels != 100 {
		t.Errorf("Expected 100 pixels, got %d", stats.TotalPixels)
	}
	if stats.HitPixels != 4 {
		t.Errorf("Expected 4 hit pixels, got %d", stats.HitPixels)
	}
	if stats.Intersections != 100 {
		t.Errorf("Expected 100 intersection tests, got %d", stats.Intersections)
	}
}

func TestRaycaster_NoCamera(t *testing.T) {
	s := scene.New(scene.Sphere{Color: core.NewVec3(1, 0, 0), Position: core.NewVec3(0, 0, 5), Radius: 1})

	img, _, err := NewRaycaster(s, DefaultConfig(10, 10)).Render(context.Background())
	if !errors.Is(err, ErrNoCameraFound) {
		t.Fatalf("Expected ErrNoCameraFound, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image when the camera is missing")
	}
}

func TestRaycaster_InvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, _, err := NewRaycaster(redSphereScene(), DefaultConfig(size[0], size[1])).Render(context.Background())
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%dx%d: expected ErrInvalidDimensions, got %v", size[0], size[1], err)
		}
	}
}

func TestRaycaster_UnknownObject(t *testing.T) {
	s := scene.New(scene.Camera{Width: 2, Height: 2}, nil)

	_, _, err := NewRaycaster(s, DefaultConfig(4, 4)).Render(context.Background())
	if !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("Expected ErrUnknownObject, got %v", err)
	}
}

func TestRaycaster_NearestSurfaceWins(t *testing.T) {
	// Green sphere in front of a blue plane, listed after it
	s := scene.New(
		scene.Plane{Color: core.NewVec3(0, 0, 1), Position: core.NewVec3(0, 0, 20), Normal: core.NewVec3(0, 0, -1)},
		scene.Camera{Width: 2, Height: 2},
		scene.Sphere{Color: core.NewVec3(0, 1, 0), Position: core.NewVec3(0, 0, 5), Radius: 1},
	)

	img, stats, err := NewRaycaster(s, DefaultConfig(10, 10)).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := img.At(4, 4); got != (Pixel{G: 255}) {
		t.Errorf("Center pixel: expected green, got %+v", got)
	}
	if got := img.At(0, 0); got != (Pixel{B: 255}) {
		t.Errorf("Corner pixel: expected blue plane, got %+v", got)
	}
	if stats.HitPixels != 100 {
		t.Errorf("Expected every pixel to hit, got %d", stats.HitPixels)
	}
}

func TestRaycaster_ColorScaling(t *testing.T) {
	s := scene.New(
		scene.Camera{Width: 2, Height: 2},
		scene.Plane{Color: core.NewVec3(0.5, 0.25, 1), Position: core.NewVec3(0, 0, 3), Normal: core.NewVec3(0, 0, 1)},
	)

	img, _, err := NewRaycaster(s, DefaultConfig(2, 2)).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := Pixel{R: 127, G: 63, B: 255}
	if got := img.At(1, 1); got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestRaycaster_DeterministicAcrossWorkers(t *testing.T) {
	s := scene.New(
		scene.Camera{Width: 3, Height: 2},
		scene.Sphere{Color: core.NewVec3(1, 0.5, 0), Position: core.NewVec3(0.5, 0.2, 6), Radius: 1.3},
		scene.Plane{Color: core.NewVec3(0.2, 0.2, 0.2), Position: core.NewVec3(0, -1, 0), Normal: core.NewVec3(0, 1, 0)},
	)

	render := func(workers, tileSize int) *Image {
		config := DefaultConfig(97, 61)
		config.Workers = workers
		config.TileSize = tileSize
		img, _, err := NewRaycaster(s, config).Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return img
	}

	reference := render(1, 1000)
	for _, workers := range []int{2, 8} {
		img := render(workers, 16)
		for i := range reference.Pixels {
			if img.Pixels[i] != reference.Pixels[i] {
				t.Fatalf("%d workers: pixel %d differs: %+v vs %+v", workers, i, img.Pixels[i], reference.Pixels[i])
			}
		}
	}
}

func TestRaycaster_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRaycaster(redSphereScene(), DefaultConfig(10, 10)).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestBuildShapes(t *testing.T) {
	s := scene.New(
		scene.Camera{Width: 1, Height: 1},
		scene.Empty{},
		scene.Sphere{Radius: 1},
		scene.Plane{Normal: core.NewVec3(0, 2, 0)},
	)

	shapes, err := BuildShapes(s)
	if err != nil {
		t.Fatalf("BuildShapes failed: %v", err)
	}
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}
	if _, ok := shapes[0].(*geometry.Sphere); !ok {
		t.Errorf("Expected sphere first, got %T", shapes[0])
	}
	plane, ok := shapes[1].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected plane second, got %T", shapes[1])
	}
	if plane.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normalized plane normal, got %v", plane.Normal)
	}
}

func TestRaycaster_OffCenterSphere(t *testing.T) {
	// Raised sphere only covers the two pixels just above the image center
	s := scene.New(
		scene.Camera{Width: 2, Height: 2},
		scene.Sphere{Color: core.NewVec3(1, 1, 1), Position: core.NewVec3(0, 0.5, 5), Radius: 1},
	)

	img, stats, err := NewRaycaster(s, DefaultConfig(10, 10)).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	white := Pixel{R: 255, G: 255, B: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			lit := y == 4 && (x == 4 || x == 5)
			if got := img.At(x, y); (got == white) != lit {
				t.Errorf("Pixel (%d,%d): lit=%t, got %+v", x, y, lit, got)
			}
		}
	}
	if stats.HitPixels != 2 {
		t.Errorf("Expected 2 hit pixels, got %d", stats.HitPixels)
	}
}
