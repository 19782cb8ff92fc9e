package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

func TestViewPlane_PlanePoint(t *testing.T) {
	vp := NewViewPlane(scene.Camera{Width: 2, Height: 2}, 10, 10)

	tests := []struct {
		name     string
		col, row int
		x, y     float64
	}{
		{"top left", 0, 0, -0.9, 0.9},
		{"bottom right", 9, 9, 0.9, -0.9},
		{"right of center", 5, 4, 0.1, 0.1},
		{"below center", 4, 5, -0.1, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := vp.PlanePoint(tt.col, tt.row)
			if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
				t.Errorf("PlanePoint(%d,%d) = (%f,%f), want (%f,%f)", tt.col, tt.row, p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestViewPlane_NonSquare(t *testing.T) {
	vp := NewViewPlane(scene.Camera{Width: 4, Height: 1}, 4, 2)

	p := vp.PlanePoint(0, 0)
	if math.Abs(p.X-(-1.5)) > 1e-9 || math.Abs(p.Y-0.25) > 1e-9 {
		t.Errorf("Expected (-1.5, 0.25), got (%f, %f)", p.X, p.Y)
	}
	p = vp.PlanePoint(3, 1)
	if math.Abs(p.X-1.5) > 1e-9 || math.Abs(p.Y-(-0.25)) > 1e-9 {
		t.Errorf("Expected (1.5, -0.25), got (%f, %f)", p.X, p.Y)
	}
}

func TestViewPlane_GetRay(t *testing.T) {
	vp := NewViewPlane(scene.Camera{Width: 2, Height: 2}, 10, 10)
	ray := vp.GetRay(0, 0)

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin at world origin, got %v", ray.Origin)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}

	expected := core.NewVec3(-0.9, 0.9, 1).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestViewPlane_MatchesPixelFormula(t *testing.T) {
	cam := scene.Camera{Width: 3, Height: 1.5}
	width, height := 7, 5
	vp := NewViewPlane(cam, width, height)

	pixelWidth := cam.Width / float64(width)
	pixelHeight := cam.Height / float64(height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			wantX := -cam.Width/2 + (float64(col)+0.5)*pixelWidth
			wantY := cam.Height/2 - (float64(row)+0.5)*pixelHeight

			p := vp.PlanePoint(col, row)
			if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
				t.Errorf("PlanePoint(%d,%d) = (%f,%f), want (%f,%f)", col, row, p.X, p.Y, wantX, wantY)
			}
		}
	}
}
